package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sagrapp/backend/internal/admin"
	"github.com/sagrapp/backend/internal/auth"
	"github.com/sagrapp/backend/internal/courses"
	"github.com/sagrapp/backend/internal/database"
	"github.com/sagrapp/backend/internal/gamification"
	"github.com/sagrapp/backend/internal/generator"
	"github.com/sagrapp/backend/internal/middleware"
)

func main() {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	courseHandler := courses.NewHandler(courses.NewService(courses.NewStore(db)))
	gamificationHandler := gamification.NewHandler(gamification.NewService(gamification.NewStore(db)))
	adminHandler := admin.NewHandler(admin.NewStore(db))
	generatorHandler := generator.NewHandler(generator.NewService(generator.NewStore(db), generator.NewGenerator()))

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	protected.HandleFunc("/courses", courseHandler.ListCourses).Methods("GET")
	protected.HandleFunc("/courses/{id:[0-9]+}", courseHandler.GetCourse).Methods("GET")
	protected.HandleFunc("/lessons/{id:[0-9]+}", courseHandler.GetLesson).Methods("GET")
	protected.HandleFunc("/lessons/{id:[0-9]+}/complete", gamificationHandler.CompleteLesson).Methods("POST")
	protected.HandleFunc("/decisions/{id:[0-9]+}/respond", courseHandler.RespondDecision).Methods("POST")

	protected.HandleFunc("/gamification", gamificationHandler.GetGamification).Methods("GET")
	protected.HandleFunc("/streak/refresh", gamificationHandler.RefreshStreak).Methods("POST")
	protected.HandleFunc("/achievements", gamificationHandler.GetAchievements).Methods("GET")

	// Admin routes
	adminRoutes := protected.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.RequireAdmin(db))

	adminRoutes.HandleFunc("/stats", adminHandler.GetStats).Methods("GET")
	adminRoutes.HandleFunc("/users", adminHandler.ListUsers).Methods("GET")
	adminRoutes.HandleFunc("/decisions", adminHandler.ListDecisions).Methods("GET")

	adminRoutes.HandleFunc("/courses", courseHandler.CreateCourse).Methods("POST")
	adminRoutes.HandleFunc("/courses/{id:[0-9]+}", courseHandler.UpdateCourse).Methods("PUT")
	adminRoutes.HandleFunc("/courses/{id:[0-9]+}", courseHandler.DeleteCourse).Methods("DELETE")
	adminRoutes.HandleFunc("/courses/{id:[0-9]+}/move", courseHandler.MoveCourse).Methods("POST")

	adminRoutes.HandleFunc("/courses/{courseId:[0-9]+}/lessons", courseHandler.CreateLesson).Methods("POST")
	adminRoutes.HandleFunc("/lessons/{id:[0-9]+}", courseHandler.UpdateLesson).Methods("PUT")
	adminRoutes.HandleFunc("/lessons/{id:[0-9]+}", courseHandler.DeleteLesson).Methods("DELETE")
	adminRoutes.HandleFunc("/lessons/{id:[0-9]+}/move", courseHandler.MoveLesson).Methods("POST")

	adminRoutes.HandleFunc("/lessons/{lessonId:[0-9]+}/questions", courseHandler.ListQuestions).Methods("GET")
	adminRoutes.HandleFunc("/lessons/{lessonId:[0-9]+}/questions", courseHandler.CreateQuestion).Methods("POST")
	adminRoutes.HandleFunc("/questions/{id:[0-9]+}", courseHandler.UpdateQuestion).Methods("PUT")
	adminRoutes.HandleFunc("/questions/{id:[0-9]+}", courseHandler.DeleteQuestion).Methods("DELETE")
	adminRoutes.HandleFunc("/questions/{id:[0-9]+}/move", courseHandler.MoveQuestion).Methods("POST")

	adminRoutes.HandleFunc("/lessons/{id:[0-9]+}/generate-questions", generatorHandler.GenerateQuestions).Methods("POST")
	adminRoutes.HandleFunc("/lessons/{id:[0-9]+}/generated-questions", generatorHandler.ListDrafts).Methods("GET")
	adminRoutes.HandleFunc("/generated-questions/{id:[0-9]+}/review", generatorHandler.ReviewDraft).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
