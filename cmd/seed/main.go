// Seeds the articles table with default content when it is empty.
package main

import (
	"context"

	"github.com/adelbrx/blogs/blog/articles"
	"github.com/adelbrx/blogs/internal/config"
	"github.com/adelbrx/blogs/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

var seedArticles = []articles.CreateArticleRequest{
	{
		Title:   "The Secret Life of Socks: Where Do They Go?",
		Content: "A deep dive into the vanishing act of single socks. Is it a portal? A conspiracy? We interview laundry experts and quantum physicists to uncover the truth behind the great sock mystery. Hint: it involves a lot of lint and possibly a tiny black hole.",
	},
	{
		Title:   "The Rise of Retro-Computing: Why Old Software Still Matters",
		Content: "Forget 4K graphics and blazing-fast processors. We explore the growing community dedicated to preserving and running decades-old computer hardware and software. Learn about the aesthetic appeal of pixel art and the surprisingly practical skills gained from programming on a Commodore 64.",
	},
	{
		Title:   "5 Unusual Uses for a Lemon Zester You Never Knew You Needed",
		Content: "Beyond garnishing cocktails, the humble lemon zester holds untapped potential. Discover how this kitchen gadget can revolutionize your gardening, streamline your crafting projects, and even act as an emergency fire starter (with proper caution, of course!).",
	},
	{
		Title:   "Mastering the Art of the Perfect Nap: A Scientific Guide",
		Content: "From the 'caffeine nap' to the ideal duration for REM cycles, this article breaks down the science of strategic rest. We cover optimal lighting, sound conditions, and even the best post-nap stretch routine to ensure you wake up refreshed, not groggy.",
	},
	{
		Title:   "DIY Guide: Building a Miniature Terrarium Ecosystem",
		Content: "Bring a tiny slice of nature indoors with this step-by-step guide on creating a self-sustaining terrarium. We discuss drainage layers, choosing the right plants (moss is a must!), and how to maintain the perfect balance of humidity and light for your micro-jungle.",
	},
	{
		Title:   "Debunking the Myth of the 'Morning Person' vs. 'Night Owl'",
		Content: "It's not just about willpower—it's about chronotypes. We look at the biological clock that dictates your natural sleep-wake cycle and offer tips on how to structure your workday to align with your personal energy peaks, making productivity easier for everyone.",
	},
}

func main() {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	ctx := context.Background()

	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		logger.Fatal("failed to count articles", "error", err)
	}

	if count > 0 {
		logger.Info("articles table already seeded", "count", count)
		return
	}

	repo := articles.NewRepository(db)

	for _, req := range seedArticles {
		if _, err := repo.Create(ctx, req); err != nil {
			logger.Fatal("failed to seed article", "title", req.Title, "error", err)
		}
	}

	logger.Info("seeded articles", "count", len(seedArticles))
}
