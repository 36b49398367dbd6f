package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/config"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/llm"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/pipeline"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/shopify"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

var (
	autopostConfigPath string
	autopostOnce       bool
)

var autopostCmd = &cobra.Command{
	Use:   "autopost",
	Short: "Generate and publish blog posts to Shopify on an interval",
	Long: `Continuously generate blog posts from the configured topic rotation and
publish them to the store's blog. Each cycle picks a random topic, drafts a
persona and outline, generates the full post, and publishes it.`,
	RunE: runAutopost,
}

func init() {
	autopostCmd.Flags().StringVar(&autopostConfigPath, "config", "", "Path to JSON config file")
	autopostCmd.Flags().BoolVar(&autopostOnce, "once", false, "Publish a single post and exit")
	rootCmd.AddCommand(autopostCmd)
}

func runAutopost(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(autopostConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.RequireGemini(); err != nil {
		return err
	}
	if err := cfg.RequireShopify(); err != nil {
		return err
	}

	client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	store, err := shopify.New(cfg.ShopifyStoreName, cfg.ShopifyAccessToken, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create Shopify client: %w", err)
	}

	poster := &autoPoster{
		cfg:      cfg,
		pipeline: pipeline.New(client, pipeline.WithRetryLimit(cfg.RetryLimit)),
		store:    store,
	}

	if err := poster.testConnections(cmd.Context()); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}

	if err := poster.publishOne(cmd.Context()); err != nil {
		log.Printf("[autopost] cycle failed: %v", err)
	}
	if autopostOnce {
		return nil
	}

	interval := time.Duration(cfg.AutoPost.IntervalMinutes) * time.Minute
	log.Printf("[autopost] running every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			if err := poster.publishOne(cmd.Context()); err != nil {
				log.Printf("[autopost] cycle failed: %v", err)
			}
		case <-stop:
			log.Println("[autopost] shutting down")
			return nil
		}
	}
}

type autoPoster struct {
	cfg      *config.Config
	pipeline *pipeline.Pipeline
	store    *shopify.Client
}

// testConnections probes Gemini and Shopify before entering the loop.
func (p *autoPoster) testConnections(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := p.pipeline.Run(ctx, types.NewRequest(types.IntentTrendingTopics, nil))
		if err != nil {
			return fmt.Errorf("gemini: %w", err)
		}
		if result.Fallback {
			log.Printf("[autopost] gemini reachable but returned fallback topics")
		}
		return nil
	})

	g.Go(func() error {
		if _, err := p.store.Blogs(ctx); err != nil {
			return fmt.Errorf("shopify: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Println("[autopost] connections OK")
	return nil
}

// publishOne runs one full generation-and-publish cycle.
func (p *autoPoster) publishOne(ctx context.Context) error {
	settings := p.cfg.AutoPost
	title := pick(settings.Topics)
	params := map[string]string{
		types.ParamTitle:           title,
		types.ParamTone:            pick(settings.Tones),
		types.ParamContentTemplate: pick(settings.ContentTemplates),
		types.ParamAuthorPersona:   pick(settings.AuthorPersonas),
		types.ParamKeywords:        strings.Join(sample(settings.Keywords, 3), ", "),
	}
	log.Printf("[autopost] generating %q", title)

	// Persona is an optional enhancement; a failure here is not fatal.
	personaResult, err := p.pipeline.Run(ctx, types.NewRequest(types.IntentPersona, map[string]string{
		types.ParamDescription: "Pakistani women aged 20-35 interested in natural skincare solutions",
	}))
	if err != nil {
		log.Printf("[autopost] persona generation skipped: %v", err)
	} else if persona, ok := personaResult.Record.(types.Persona); ok {
		params[types.ParamBrandVoice] = fmt.Sprintf("Write for %s: %s", persona.Name, persona.Bio)
	}

	outlineResult, err := p.pipeline.Run(ctx, types.NewRequest(types.IntentOutline, params))
	if err != nil {
		return fmt.Errorf("outline: %w", err)
	}
	if outline, ok := outlineResult.Record.(types.Outline); ok {
		params[types.ParamOutline] = "## " + strings.Join(outline.Sections, "\n## ")
	}

	postResult, err := p.pipeline.Run(ctx, types.NewRequest(types.IntentFullPost, params))
	if err != nil {
		return fmt.Errorf("full post: %w", err)
	}
	post, ok := postResult.Record.(types.BlogPost)
	if !ok {
		return fmt.Errorf("unexpected record type %T for full post", postResult.Record)
	}
	if postResult.Fallback {
		log.Printf("[autopost] skipping publish: generation fell back to placeholder content")
		return nil
	}
	log.Printf("[autopost] generated %d-word post", post.WordCount)

	blog, err := p.store.GetOrCreateBlog(ctx)
	if err != nil {
		return fmt.Errorf("blog lookup: %w", err)
	}

	article, err := p.store.CreateArticle(ctx, blog.ID, &post)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	log.Printf("[autopost] published article %d: %s", article.ID, article.Title)
	return nil
}

func pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rand.Intn(len(options))]
}

func sample(options []string, n int) []string {
	if n >= len(options) {
		return options
	}
	perm := rand.Perm(len(options))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = options[perm[i]]
	}
	return out
}
