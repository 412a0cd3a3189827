package main

import (
	"context"
	"os"

	"warehouse_silver/internal/adapter/persistence/repository"
	"warehouse_silver/internal/infrastructure/database"
	"warehouse_silver/internal/usecase"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
)

// The silver job is a one-shot batch process: it cleanses the six
// bronze tables into the silver layer, replacing the previous silver
// state wholesale, and exits.
func main() {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "silver-job",
	}))

	s3c := database.ConnectS3()
	gluec := database.ConnectGlue()
	ddb := database.ConnectDynamoDB()

	job := usecase.NewSilverJob(
		repository.NewBronzeS3Repository(s3c),
		repository.NewSilverS3Repository(s3c),
		repository.NewGlueCatalogRepository(gluec),
		repository.NewRunLedgerDynamoRepository(ddb),
	)

	run, err := job.Run(context.Background())
	if err != nil {
		log.Fatal("silver run failed", "run_id", run.ID, "err", err)
	}
}
