package queue

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"
)

// AMQPQueue publishes events to RabbitMQ so the audit worker can consume
// them out of process. Used when AMQP_URL is set.
type AMQPQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPQueue(url string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &AMQPQueue{conn: conn, ch: ch}, nil
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	if _, err := q.ch.QueueDeclare(topic, true, false, false, false, nil); err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Subscribe consumes a topic and hands each delivery to the handler as an
// EntityEvent, matching what InMemoryQueue delivers. A handler error
// requeues the delivery once; a second failure rejects it.
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	if _, err := q.ch.QueueDeclare(topic, true, false, false, false, nil); err != nil {
		return err
	}
	msgs, err := q.ch.Consume(topic, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	go func() {
		for d := range msgs {
			dispatchDelivery(d, handler)
		}
	}()
	return nil
}

func dispatchDelivery(d amqp.Delivery, handler func(payload any) error) {
	var ev EntityEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		log.Println("Invalid event:", err)
		d.Ack(false)
		return
	}
	if err := handler(ev); err != nil {
		log.Println("⚠️ handler failed:", err)
		if !d.Redelivered {
			d.Nack(false, true)
		} else {
			d.Nack(false, false)
		}
		return
	}
	d.Ack(false)
}

func (q *AMQPQueue) Close() error {
	if err := q.ch.Close(); err != nil {
		q.conn.Close()
		return err
	}
	return q.conn.Close()
}

var _ Queue = (*AMQPQueue)(nil)
