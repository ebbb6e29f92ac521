package main

import (
	"context"
	"database/sql"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	_ "modernc.org/sqlite"

	"github.com/huntwet/huntwet/internal/api"
	"github.com/huntwet/huntwet/internal/config"
	"github.com/huntwet/huntwet/internal/geo"
	"github.com/huntwet/huntwet/internal/history"
	"github.com/huntwet/huntwet/internal/moon"
	"github.com/huntwet/huntwet/internal/predict"
	"github.com/huntwet/huntwet/internal/store"
	"github.com/huntwet/huntwet/internal/weather"
)

var cli struct {
	DB      string `help:"Path to SQLite database." default:"data/huntwet.db" env:"HUNTWET_DB"`
	Port    string `help:"HTTP server port." default:"8080" env:"PORT"`
	Scoring string `help:"Optional YAML file overriding scoring parameters." env:"HUNTWET_SCORING"`
	Seed    int64  `help:"RNG seed (0 = time-based)." env:"HUNTWET_SEED"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("huntwet"),
		kong.Description("Game activity prediction service."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	cfg, err := config.Load(cli.Scoring)
	if err != nil {
		log.Fatalf("load scoring config: %v", err)
	}

	db, err := sql.Open("sqlite", cli.DB)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("database migrated")

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	server := api.NewServer(
		st,
		geo.NewResolver(),
		moon.NewClient(),
		weather.NewClient(rand.New(rand.NewSource(seed+1))),
		history.NewProvider(st, time.Duration(cfg.HistoryWindow)),
		predict.New(cfg, rng),
		cfg,
		cli.Port,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf("starting server on :%s", cli.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
