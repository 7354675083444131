// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unclebandit/customerdesk/internal/config"
	"github.com/unclebandit/customerdesk/internal/controller"
	"github.com/unclebandit/customerdesk/internal/db"
	"github.com/unclebandit/customerdesk/internal/handler"
	"github.com/unclebandit/customerdesk/internal/queue"
	"github.com/unclebandit/customerdesk/internal/repository"
	"github.com/unclebandit/customerdesk/internal/router"
	"github.com/unclebandit/customerdesk/internal/service"
	"github.com/unclebandit/customerdesk/internal/view"
)

func main() {
	cfg := config.Load()

	pool, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer pool.Close()

	q, closeQueue, err := newQueue(cfg)
	if err != nil {
		log.Fatalf("failed to set up events queue: %v", err)
	}
	defer closeQueue()

	customerService := &service.CustomerService{
		CustomerRepo:         &repository.CustomerRepository{DB: pool},
		CompanyRepo:          &repository.CompanyRepository{DB: pool},
		EmployeeCustomerRepo: &repository.EmployeeCustomerRepository{DB: pool},
		Queue:                q,
		EventsTopic:          cfg.EventsQueue,
	}

	views, err := view.New(view.Options{MinifyHTML: cfg.MinifyHTML})
	if err != nil {
		log.Fatalf("failed to load views: %v", err)
	}

	customerController := &controller.CustomerController{
		CustomerService: customerService,
		Views:           views,
	}

	srv := &http.Server{
		Handler:           router.New(customerController, handler.NewHealthHandler(pool)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", cfg.Addr(), err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Println("Server has started")
	log.Println("🚀 Listening on", cfg.Addr())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️ shutdown: %v", err)
	}
	log.Println("👋 Server stopped")
}

// newQueue publishes to RabbitMQ when AMQP_URL is set and otherwise logs events in-process.
func newQueue(cfg config.Config) (queue.Queue, func(), error) {
	if cfg.AMQPURL == "" {
		q := queue.NewInMemoryQueue()
		if err := queue.StartCustomerEventSubscriber(q, cfg.EventsQueue); err != nil {
			return nil, nil, err
		}
		return q, q.Wait, nil
	}

	q, err := queue.DialAMQP(cfg.AMQPURL)
	if err != nil {
		return nil, nil, err
	}
	log.Println("✅ Publishing customer events to RabbitMQ queue", cfg.EventsQueue)
	return q, func() {
		if err := q.Close(); err != nil {
			log.Println("⚠️ closing RabbitMQ connection:", err)
		}
	}, nil
}
