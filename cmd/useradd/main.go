// Command useradd creates or updates an operator account used for re-authentication.
//
//	go run ./cmd/useradd -username alice -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/auth"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/postgres"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/repo"

	"github.com/joho/godotenv"
)

func main() {
	username := flag.String("username", "", "operator name, same as the X-User header")
	password := flag.String("password", "", "operator password")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	godotenv.Load()
	conf := config.New()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, conf.Postgres)
	exitIfErr("failed to connect to db", err)
	defer db.Close()

	exitIfErr("failed to apply migrations", postgres.Migrate(ctx, db))

	hash, err := auth.HashPassword(*password)
	exitIfErr("failed to hash password", err)

	err = repo.NewPostgresRepo(db).SaveUser(ctx, entities.User{Username: *username, PasswordHash: hash})
	exitIfErr("failed to save user", err)

	fmt.Printf("user %s saved\n", *username)
}

func exitIfErr(prefix string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, err)
		os.Exit(1)
	}
}
