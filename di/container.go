package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"tp-server/api"
	"tp-server/api/places"
	"tp-server/config"
	"tp-server/dao/redis"
	"tp-server/db"
	"tp-server/server"
	"tp-server/server/handlers"
	services "tp-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisPOIDao             *redis.RedisPOIDAO
	POIService              *services.POIService
	HoursService            *services.HoursService
	PlacesAPI               places.PlacesAPI
	POIHandler              *handlers.POIHandler
	HoursHandler            *handlers.HoursHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	TravelPlannerHttpServer *server.TravelPlannerHttpServer
	CatalogRefresherService *services.CatalogRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	redisPOIDao := redis.NewRedisPOIDAO(redisClient)

	// Use the fixture-backed mock unless provider credentials are set
	var placesApiClient places.PlacesAPI
	if apiKey := config.PlacesAPIKey(); env == "prod" && apiKey != "" {
		log.Printf("Using prod places api")
		httpClient := api.NewHTTPClient(config.PLACES_ENDPOINT_BASE_V1)
		client := places.NewPlacesApiClient(httpClient)
		client.SetCredentials(apiKey)
		placesApiClient = client
	} else {
		log.Printf("Using mock places api")
		placesApiClient = places.NewPlacesApiClientMock()
	}

	hoursService := services.NewHoursService(redisPOIDao)
	poiService := services.NewPOIService(redisPOIDao, placesApiClient)

	poiHandler := handlers.NewPOIHandler(poiService, hoursService)
	hoursHandler := handlers.NewHoursHandler(hoursService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(poiHandler, hoursHandler, muxRouter)
	travelPlannerHttpServer := server.NewTravelPlannerHttpServer(router, muxRouter)

	catalogRefresherService := services.NewCatalogRefresherService(redisPOIDao, placesApiClient, hoursService)

	return &Container{
		RedisClient:             redisClient,
		RedisPOIDao:             redisPOIDao,
		POIService:              poiService,
		HoursService:            hoursService,
		PlacesAPI:               placesApiClient,
		POIHandler:              poiHandler,
		HoursHandler:            hoursHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		TravelPlannerHttpServer: travelPlannerHttpServer,
		CatalogRefresherService: catalogRefresherService,
	}
}
