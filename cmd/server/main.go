package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/ampta/resumecraft-backend/internal/auth"
	"github.com/ampta/resumecraft-backend/internal/config"
	"github.com/ampta/resumecraft-backend/internal/database"
	"github.com/ampta/resumecraft-backend/internal/gateway"
	"github.com/ampta/resumecraft-backend/internal/handlers"
	"github.com/ampta/resumecraft-backend/internal/middleware"
	"github.com/ampta/resumecraft-backend/internal/notify"
	"github.com/ampta/resumecraft-backend/internal/repository"
	"github.com/ampta/resumecraft-backend/internal/routes"
	"github.com/ampta/resumecraft-backend/internal/services"
	"github.com/ampta/resumecraft-backend/internal/storage"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		log.Println("⚠️  WARNING: Razorpay credentials not set. Payment orders will fail.")
	}

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	mongoClient, db, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect(mongoClient)

	// Connect to Redis (rate limiting)
	log.Printf("Connecting to Redis...")
	redisClient, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Ensure MongoDB indexes
	ctx := context.Background()
	if err := repository.EnsureUserIndexes(ctx, db); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure user indexes: %v", err)
	}
	if err := repository.EnsurePaymentIndexes(ctx, db); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure payment indexes: %v", err)
	}
	if err := repository.EnsureResumeIndexes(ctx, db); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure resume indexes: %v", err)
	}

	// Repositories
	userRepo := repository.NewMongoUserRepository(db)
	paymentRepo := repository.NewMongoPaymentRepository(db)
	resumeRepo := repository.NewMongoResumeRepository(db)

	// External collaborators
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	razorpay := gateway.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	var blobs services.BlobStore
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		cloudStore, err := storage.NewCloudinaryStore(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "resumecraft")
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary:", err)
		}
		blobs = cloudStore
		log.Println("✅ Cloudinary service initialized")
	} else {
		log.Println("Warning: Cloudinary credentials not found. Image uploads will not be available")
		blobs = storage.Unavailable{}
	}

	// Services
	authSvc := services.NewAuthService(userRepo, tokens, mailer, cfg.AppBaseURL)
	paymentSvc := services.NewPaymentService(paymentRepo, userRepo, razorpay)
	resumeSvc := services.NewResumeService(resumeRepo, userRepo, blobs)
	templateSvc := services.NewTemplateService(userRepo)

	// Router
	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(redisClient))

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, middleware.Auth(tokens),
		handlers.NewAuthHandler(authSvc),
		handlers.NewResumeHandler(resumeSvc),
		handlers.NewPaymentHandler(paymentSvc),
		handlers.NewTemplateHandler(templateSvc),
	)

	log.Printf("🚀 ResumeCraft backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
