package cli

import (
	"context"
	"fmt"
	"time"

	"ZencrowWebsite/database"
	"ZencrowWebsite/internal/api/blog"
	blogRepository "ZencrowWebsite/internal/api/blog/repository"
	blogService "ZencrowWebsite/internal/api/blog/service"
	"ZencrowWebsite/pkg/log"
	"github.com/brianvoe/gofakeit"
	"github.com/spf13/cobra"
)

var (
	seedCount int
	seedValue int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert generated blog posts",
	Long: `Inserts fake blog posts so the listing and search pages have
something to show in development. Migrations are applied first.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 10, "number of posts to insert")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if seedCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", seedCount)
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := database.MigrateUp(db); err != nil {
		return err
	}

	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	gofakeit.Seed(seedValue)

	svc := blogService.NewBlogService(logger, blogRepository.New(db, logger))
	ctx := context.Background()

	end := time.Now().UTC()
	start := end.AddDate(-1, 0, 0)

	for i := 0; i < seedCount; i++ {
		id, err := svc.CreatePost(ctx, blog.CreatePostRequest{
			Title:      gofakeit.Sentence(5),
			Content:    gofakeit.Paragraph(3, 4, 12, "\n\n"),
			Author:     gofakeit.Name(),
			DatePosted: gofakeit.DateRange(start, end).UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to insert post %d: %w", i+1, err)
		}
		logger.WithFields(log.Fields{"post_id": id}).Debug("Seeded post")
	}

	cmd.Printf("Seeded %d posts.\n", seedCount)
	return nil
}
