package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"smart-shopping-cart/internal/cart"
	"smart-shopping-cart/internal/config"
	"smart-shopping-cart/internal/database"
	"smart-shopping-cart/internal/metrics"
	"smart-shopping-cart/internal/plan"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := config.NewFromEnv()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "generate":
		runGenerate(ctx, cfg, os.Args[2:])
	case "history":
		runHistory(ctx, cfg, os.Args[2:])
	case "cleanup":
		runCleanup(ctx, cfg, os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runGenerate(ctx context.Context, cfg *config.Config, args []string) {
	genCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	planPath := genCmd.String("meal-plan", "", "Path to the weekly meal plan file (JSON or YAML)")
	userID := genCmd.String("user-id", cfg.UserID, "User the shopping list belongs to")
	format := genCmd.String("format", "json", "Export format: json or csv")
	noBulk := genCmd.Bool("no-bulk", false, "Suppress bulk purchase suggestions")
	noSave := genCmd.Bool("no-save", false, "Skip persisting the list and run metrics")
	genCmd.Parse(args)

	if *planPath == "" {
		log.Fatal("generate requires --meal-plan")
	}

	weeklyPlan, err := plan.Load(*planPath)
	if err != nil {
		log.Fatalf("Failed to load meal plan: %v", err)
	}

	list, stats := cart.Generate(weeklyPlan, cart.Preferences{DisableBulkNotes: *noBulk})

	fmt.Print(list.Render())

	exportPath, err := list.WriteExport(cfg.ExportDir, *format)
	if err != nil {
		log.Fatalf("Failed to write export: %v", err)
	}
	fmt.Printf("\nShopping list exported to: %s\n", exportPath)
	fmt.Printf("Generated shopping list with:\n")
	fmt.Printf("   - %d essential items\n", len(list.Essential))
	fmt.Printf("   - %d pantry staples\n", len(list.PantryStaples))
	fmt.Printf("   - %d fresh priority items\n", len(list.FreshPriority))
	fmt.Printf("   - %d shelf stable items\n", len(list.ShelfStable))

	if *noSave {
		return
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repo := cart.NewRepository(db.SQL)
	id, err := repo.Save(ctx, *userID, list)
	if err != nil {
		log.Fatalf("Failed to save shopping list: %v", err)
	}

	metricsStore := metrics.NewStore(db.SQL)
	if err := metricsStore.Record(ctx, metrics.RunMetric{
		UserID:       *userID,
		RecipeCount:  stats.Recipes,
		RawItemCount: stats.RawItems,
		ItemCount:    stats.Items,
		DurationMS:   stats.Duration.Milliseconds(),
	}); err != nil {
		log.Printf("Warning: failed to record run metrics: %v", err)
	}

	fmt.Printf("Saved shopping list %s for user %s\n", id, *userID)
}

func runHistory(ctx context.Context, cfg *config.Config, args []string) {
	histCmd := flag.NewFlagSet("history", flag.ExitOnError)
	userID := histCmd.String("user-id", cfg.UserID, "User whose saved lists to show")
	limit := histCmd.Int("limit", 10, "Maximum number of lists to show")
	histCmd.Parse(args)

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repo := cart.NewRepository(db.SQL)
	saved, err := repo.ListRecentByUser(ctx, *userID, *limit)
	if err != nil {
		log.Fatalf("Failed to list shopping lists: %v", err)
	}

	if len(saved) == 0 {
		fmt.Printf("No saved shopping lists for user %s\n", *userID)
		return
	}

	for _, s := range saved {
		counts := s.Counts()
		fmt.Printf("%s  %s  essential=%d pantry=%d fresh=%d shelf=%d\n",
			s.GeneratedAt.Format("2006-01-02 15:04"), s.ID,
			counts.Essential, counts.PantryStaples, counts.FreshPriority, counts.ShelfStable)
	}
}

func runCleanup(ctx context.Context, cfg *config.Config, args []string) {
	cleanupCmd := flag.NewFlagSet("cleanup", flag.ExitOnError)
	days := cleanupCmd.Int("days", 30, "Keep run metrics for the last N days")
	cleanupCmd.Parse(args)

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	metricsStore := metrics.NewStore(db.SQL)
	if err := metricsStore.Cleanup(ctx, *days); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}
	fmt.Printf("Removed run metrics older than %d days.\n", *days)
	fmt.Printf("On disk: %s\n", metrics.MeasureFootprint(cfg.DatabasePath, cfg.ExportDir))
}

func printUsage() {
	fmt.Println("Usage: shopping-list <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  generate --meal-plan <file>   Generate a shopping list from a weekly meal plan")
	fmt.Println("  history                       Show recently saved shopping lists")
	fmt.Println("  cleanup                       Remove old run metrics")
}
