package main

import (
	"fmt"
	"strconv"

	"github.com/gostream-official/songs/impl/funcs/createrating"
	"github.com/gostream-official/songs/impl/funcs/getavgdifficulty"
	"github.com/gostream-official/songs/impl/funcs/getavgrating"
	"github.com/gostream-official/songs/impl/funcs/gethealth"
	"github.com/gostream-official/songs/impl/funcs/getrating"
	"github.com/gostream-official/songs/impl/funcs/getsongs"
	"github.com/gostream-official/songs/impl/funcs/searchsongs"
	"github.com/gostream-official/songs/impl/inject"
	"github.com/gostream-official/songs/impl/models"
	"github.com/gostream-official/songs/impl/services/catalog"
	"github.com/gostream-official/songs/impl/services/rating"
	"github.com/gostream-official/songs/pkg/env"
	"github.com/gostream-official/songs/pkg/router"
	"github.com/gostream-official/songs/pkg/store"

	"github.com/joho/godotenv"
	"github.com/revx-official/output/log"
)

// Description:
//
//	The package initializer function.
//	Initializes the log level to info.
func init() {
	log.Level = log.LevelInfo
}

// Description:
//
//	The main function.
//	Represents the entry point of the application.
func main() {
	log.Infof("booting service instance ...")

	if err := godotenv.Load(); err != nil {
		log.Infof("no .env file found, using process environment")
	}

	mongoUsername, err := env.GetEnvironmentVariable("MONGO_USERNAME")
	if err != nil {
		log.Fatalf("cannot retrieve mongo username via environment variable")
	}

	mongoPassword, err := env.GetEnvironmentVariable("MONGO_PASSWORD")
	if err != nil {
		log.Fatalf("cannot retrieve mongo password via environment variable")
	}

	mongoHost := env.GetEnvironmentVariableWithFallback("MONGO_HOST", "127.0.0.1:27017")
	mongoDatabase := env.GetEnvironmentVariableWithFallback("MONGO_DATABASE", "gostream")

	port, err := strconv.Atoi(env.GetEnvironmentVariableWithFallback("SERVICE_PORT", "9874"))
	if err != nil {
		log.Fatalf("service port must be an integer: %s", err)
	}

	connectionURI := fmt.Sprintf("mongodb://%s:%s@%s", mongoUsername, mongoPassword, mongoHost)

	log.Infof("establishing database connection ...")
	instance, err := store.NewMongoInstance(connectionURI)

	if err != nil {
		log.Fatalf("failed to connect to mongo instance: %s", err)
	}

	log.Infof("successfully established database connection")

	songStore := store.NewMongoStore[models.SongInfo](instance, mongoDatabase, "songs")
	ratingStore := store.NewMongoStore[models.RatingInfo](instance, mongoDatabase, "ratings")

	// Full-text search requires a text index over the searchable song
	// fields. Creating an existing index is a no-op.
	if err := songStore.EnsureTextIndex("artist", "title"); err != nil {
		log.Warnf("failed to ensure text index on songs: %s", err)
	}

	injector := inject.Injector{
		CatalogService: catalog.NewService(songStore),
		RatingService:  rating.NewService(songStore, ratingStore),
	}

	log.Infof("launching router engine ...")
	engine := router.Default()

	engine.HandleWith("GET", "/health", gethealth.Handler)
	engine.HandleWith("GET", "/songs", getsongs.Handler).Inject(injector)
	engine.HandleWith("GET", "/songs/search", searchsongs.Handler).Inject(injector)
	engine.HandleWith("GET", "/songs/avg/difficulty", getavgdifficulty.Handler).Inject(injector)
	engine.HandleWith("POST", "/songs/rating", createrating.Handler).Inject(injector)
	engine.HandleWith("GET", "/songs/rating/:ratingId", getrating.Handler).Inject(injector)
	engine.HandleWith("GET", "/songs/avg/rating/:songId", getavgrating.Handler).Inject(injector)

	err = engine.Run(port)
	if err != nil {
		log.Fatalf("failed to launch router engine: %s", err)
	}
}
