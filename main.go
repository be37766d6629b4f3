package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/s-steel/steelsitebackend/config"
	"github.com/s-steel/steelsitebackend/database"
	"github.com/s-steel/steelsitebackend/handlers"
	"github.com/s-steel/steelsitebackend/media"
	"github.com/s-steel/steelsitebackend/realtime"
	"github.com/s-steel/steelsitebackend/repository"
	"github.com/s-steel/steelsitebackend/settings"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	storagePaths := []string{cfg.ProjectsPath, cfg.GalleryPath, filepath.Dir(cfg.DatabasePath)}
	for _, p := range storagePaths {
		log.Printf("Ensuring storage directory exists: %s", p)
		if err := os.MkdirAll(p, 0755); err != nil {
			log.Fatalf("FATAL: Failed to create storage directory %s: %v", p, err)
		}
	}

	db, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database schema: %v", err)
	}
	if err := database.SeedDefaults(db, cfg.DefaultAdminUsername, cfg.DefaultAdminPassword); err != nil {
		log.Fatalf("FATAL: Failed to seed default data: %v", err)
	}

	settingRepo := repository.NewSettingRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	contactRepo := repository.NewContactRepository(db)
	contactCardRepo := repository.NewContactCardRepository(db)
	userRepo := repository.NewUserRepository(db)

	uploadStore, err := media.NewLocalStorage(cfg.UploadStoragePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize upload store: %v", err)
	}
	uploader := media.NewUploader(uploadStore)
	gallery := media.NewGallery(assetRepo, uploader)

	settingsStore := settings.NewStore(settingRepo)

	hub := realtime.NewHub()
	go hub.Run()

	log.Printf("Using database: %s", cfg.DatabasePath)
	log.Printf("Storing uploads in: %s", cfg.UploadStoragePath)

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	projectHandler := &handlers.ProjectHandler{Projects: projectRepo, Assets: assetRepo, Gallery: gallery, Hub: hub, Cfg: cfg}
	homeContentHandler := &handlers.HomeContentHandler{Settings: settingsStore, Gallery: gallery, Hub: hub, Cfg: cfg}
	settingsHandler := handlers.NewSettingsHandler(settingsStore)
	contactHandler := handlers.NewContactHandler(contactRepo, hub)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo)
	contactCardHandler := handlers.NewContactCardHandler(contactCardRepo)

	requireAuth := func(next http.HandlerFunc) http.Handler {
		return handlers.AuthMiddleware(userRepo, cfg, next)
	}

	r.Route("/api", func(r chi.Router) {
		// public surface
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{project_id}", projectHandler.GetProject)
		r.Get("/home-content", homeContentHandler.GetHomeContent)
		r.Get("/company-info", settingsHandler.GetCompanyInfo)
		r.Get("/employees", employeeHandler.ListPublicEmployees)
		r.Get("/contact-cards", contactCardHandler.ListPublicContactCards)
		r.Post("/contact", contactHandler.SubmitContact)
		r.Get("/placeholder/{width}/{height}", handlers.ServePlaceholder)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Method("GET", "/me", requireAuth(authHandler.CurrentUser))
			r.Method("GET", "/ws", requireAuth(hub.ServeWS))

			r.Method("GET", "/projects", requireAuth(projectHandler.ListProjects))
			r.Method("POST", "/projects", requireAuth(projectHandler.CreateProject))
			r.Method("PUT", "/projects/{project_id}", requireAuth(projectHandler.UpdateProject))
			r.Method("DELETE", "/projects/{project_id}", requireAuth(projectHandler.DeleteProject))
			r.Method("POST", "/projects/{project_id}/upload", requireAuth(projectHandler.UploadProjectImages))
			r.Method("GET", "/projects/{project_id}/images", requireAuth(projectHandler.ListProjectImages))
			r.Method("DELETE", "/projects/{project_id}/images/{image_id}", requireAuth(projectHandler.DeleteProjectImage))
			r.Method("PUT", "/projects/{project_id}/images/{image_id}/main", requireAuth(projectHandler.SetMainProjectImage))

			r.Method("GET", "/home-content", requireAuth(homeContentHandler.GetHomeContent))
			r.Method("PUT", "/home-content/description", requireAuth(homeContentHandler.UpdateDescription))
			r.Method("PUT", "/home-content/stats", requireAuth(homeContentHandler.UpdateStats))
			r.Method("POST", "/home-content/images", requireAuth(homeContentHandler.UploadHeroImages))
			r.Method("DELETE", "/home-content/images/{image_id}", requireAuth(homeContentHandler.DeleteHeroImage))

			r.Method("GET", "/company-settings", requireAuth(settingsHandler.GetCompanySettings))
			r.Method("PUT", "/company-settings", requireAuth(settingsHandler.UpdateCompanySettings))
			r.Method("GET", "/dashboard-settings", requireAuth(settingsHandler.GetDashboardSettings))
			r.Method("PUT", "/dashboard-settings", requireAuth(settingsHandler.UpdateDashboardSettings))

			r.Method("GET", "/contacts", requireAuth(contactHandler.ListContacts))
			r.Method("PUT", "/contacts/{contact_id}/status", requireAuth(contactHandler.UpdateContactStatus))
			r.Method("DELETE", "/contacts/{contact_id}", requireAuth(contactHandler.DeleteContact))

			r.Method("GET", "/employees", requireAuth(employeeHandler.ListEmployees))
			r.Method("POST", "/employees", requireAuth(employeeHandler.CreateEmployee))
			r.Method("PUT", "/employees/{employee_id}", requireAuth(employeeHandler.UpdateEmployee))
			r.Method("DELETE", "/employees/{employee_id}", requireAuth(employeeHandler.DeleteEmployee))

			r.Method("GET", "/contact-cards", requireAuth(contactCardHandler.ListContactCards))
			r.Method("POST", "/contact-cards", requireAuth(contactCardHandler.CreateContactCard))
			r.Method("PUT", "/contact-cards/{card_id}", requireAuth(contactCardHandler.UpdateContactCard))
			r.Method("DELETE", "/contact-cards/{card_id}", requireAuth(contactCardHandler.DeleteContactCard))
		})
	})

	r.Get("/uploads/*", handlers.UploadServer(cfg.UploadStoragePath))
	log.Printf("Registered upload server at /uploads/*")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
