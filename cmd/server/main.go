package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/fintrack/fintrack/internal/auth"
	"github.com/fintrack/fintrack/internal/profile"
)

// The sync service is the only network surface of the system. Financial
// partitions never pass through it: it upserts identity profiles and
// nothing else.
func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8111"
	}

	ctx := context.Background()

	useMemoryStore := os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("ENV") == "local"
	skipAuth := os.Getenv("SKIP_AUTH") == "true"

	var profileStore profile.Store
	var verifier auth.Verifier

	if useMemoryStore {
		log.Println("Using in-memory profile store for local development")
		profileStore = profile.NewMemoryStore()
		// Memory store always pairs with mock auth so local development
		// needs no Firebase project.
		verifier = &auth.StaticVerifier{}
	} else {
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			log.Fatal("GOOGLE_CLOUD_PROJECT is required when not using the memory store")
		}

		firestoreClient, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()
		profileStore = profile.NewFirestoreStore(firestoreClient)

		if skipAuth {
			log.Println("SKIP_AUTH enabled - using mock authentication with Firestore (for seeding/testing only)")
			verifier = &auth.StaticVerifier{}
		} else {
			verifier, err = auth.NewFirebaseAuth(ctx)
			if err != nil {
				log.Fatalf("Failed to initialize Firebase Auth: %v", err)
			}
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/api/users/sync", profile.NewSyncHandler(verifier, profileStore))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // Local frontend (vite)
			"http://127.0.0.1:5173",
			"https://fintrack-ledger.web.app",
			"https://fintrack-ledger.firebaseapp.com",
			"https://*.vercel.app", // Preview deployments
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"User-Agent",
		},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: h2c.NewHandler(c.Handler(mux), &http2.Server{}),
	}

	log.Printf("Starting sync server on port %s", port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
