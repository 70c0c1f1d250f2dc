package main

import (
	"flag"
	"fmt"
	"os"

	"fintrack/internal/config"
	"fintrack/internal/database"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var (
		direction = flag.String("direction", "up", "Migration direction: up, down, or version")
		steps     = flag.Int("steps", 0, "Number of migrations to apply (0 = all)")
	)
	flag.Parse()

	if _, err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load database configuration: %v\n", err)
		os.Exit(1)
	}

	m, err := migrate.New("file://migrations", dbConfig.URL())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create migrate instance: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	switch *direction {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			fmt.Fprintf(os.Stderr, "failed to get version: %v\n", verr)
			os.Exit(1)
		}
		fmt.Printf("version: %d, dirty: %t\n", version, dirty)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown direction %q\n", *direction)
		os.Exit(1)
	}

	if err != nil && err != migrate.ErrNoChange {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("migrations completed")
}
