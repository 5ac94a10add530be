package main

import (
	"log"
	"net/http"
	"os"

	"github.com/lumiereglamour/store/app/cmd"
	"github.com/lumiereglamour/store/app/configs"
	"github.com/lumiereglamour/store/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	sessionKeys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys failed to load:", err)
	}
	log.Println("✅ Session keys loaded.")

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db, env, sessionKeys)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
