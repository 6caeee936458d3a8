package main

import (
	"fmt"
	"log"
	"net/http"
	"petads/cmd/app"
	"petads/internal/config"
	handlers "petads/internal/handler"
	"petads/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", handler.StatsHandler).Methods(http.MethodGet)

	router.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)

	router.HandleFunc("/ads", handler.CreateAd).Methods(http.MethodPost)
	router.HandleFunc("/ads", handler.GetAds).Methods(http.MethodGet)
	router.HandleFunc("/ads/{id:[0-9]+}/image", handler.GetAdImage).Methods(http.MethodGet)
	router.HandleFunc("/ads/{id:[0-9]+}", handler.DeleteAd).Methods(http.MethodDelete)

	router.HandleFunc("/dashboard", handler.Dashboard).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
