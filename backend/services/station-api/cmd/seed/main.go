// Command seed bootstraps the stations table with the demo dataset,
// optionally wiping whatever is there first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"evcharge/backend/libs/db"
	"evcharge/backend/services/station-api/internal/repository"
	"evcharge/backend/services/station-api/internal/seed"
)

func main() {
	dsn := flag.String("dsn", "", "postgres DSN (defaults to STATION_API_POSTGRES_DSN)")
	wipe := flag.Bool("wipe", false, "delete existing stations before seeding")
	flag.Parse()

	connString := *dsn
	if connString == "" {
		connString = os.Getenv("STATION_API_POSTGRES_DSN")
	}
	if connString == "" {
		log.Fatal("no DSN provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sqlDB, err := db.NewPostgres(connString)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := repository.Migrate(ctx, sqlDB); err != nil {
		log.Fatal(err)
	}

	repo := repository.NewStationRepository(sqlDB)

	if *wipe {
		if err := repo.DeleteAll(ctx); err != nil {
			log.Fatal(err)
		}
	}

	stations := seed.Stations()
	now := time.Now().UTC()
	for i := range stations {
		stations[i].CreatedAt = now
		stations[i].LastUpdated = now
	}

	if err := repo.InsertMany(ctx, stations); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Seeded stations:", len(stations))
}
