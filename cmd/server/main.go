// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/controller"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/db"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/queue"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/repository"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB pool + schema; fatal on failure
	db.Init()
	defer db.Close()

	// Entity-change events go to RabbitMQ when configured, otherwise to
	// the in-memory queue with a local audit logger.
	var events queue.Queue
	if url := os.Getenv("AMQP_URL"); url != "" {
		q, err := queue.NewAMQPQueue(url)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer q.Close()
		events = q
	} else {
		q := queue.NewInMemoryQueue()
		queue.StartAuditSubscriber(q)
		events = q
	}

	customerRepo := &repository.CustomerRepository{DB: db.DB}
	productRepo := &repository.ProductRepository{DB: db.DB}

	customerService := &service.CustomerService{
		Repo:   customerRepo,
		Events: events,
	}
	productService := &service.ProductService{
		Repo:   productRepo,
		Events: events,
	}

	customerController := &controller.CustomerController{
		CustomerService: customerService,
	}
	productController := &controller.ProductController{
		ProductService: productService,
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost",
			"http://localhost:8080",
			"http://127.0.0.1:8080",
			"http://127.0.0.1:5500",
			"null",
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Customer routes
	r.Get("/customers", customerController.ListCustomers)
	r.Post("/customers", customerController.CreateCustomer)
	r.Get("/customers/{id}", customerController.GetCustomer)
	r.Put("/customers/{id}", customerController.UpdateCustomer)
	r.Delete("/customers/{id}", customerController.DeleteCustomer)

	// Product routes
	r.Get("/products", productController.ListProducts)
	r.Post("/products", productController.CreateProduct)
	r.Get("/products/{id}", productController.GetProduct)
	r.Put("/products/{id}", productController.UpdateProduct)
	r.Delete("/products/{id}", productController.DeleteProduct)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		log.Println("🚀 Server running on :" + port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("⚠️ shutdown error:", err)
	}
}
