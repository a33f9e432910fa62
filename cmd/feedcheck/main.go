// feedcheck logs in against the upstream API, builds the aggregated feed
// once, and prints it as JSON. Handy for checking what the home page would
// show without running the full gateway.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"hckonnect/hubgate/internal/auth"
	"hckonnect/hubgate/internal/logging"
	"hckonnect/hubgate/internal/models/dtos"
	"hckonnect/hubgate/internal/providers"
	"hckonnect/hubgate/internal/services"
)

func main() {
	email := flag.String("email", os.Getenv("HUB_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("HUB_PASSWORD"), "account password")
	page := flag.Int("page", 1, "feed page")
	tab := flag.String("filter", "all", "active tab filter")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password required (flags or HUB_EMAIL/HUB_PASSWORD)")
	}

	if err := logging.Init("development"); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logging.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	provider := providers.NewHubAPIProvider(nil)

	var loginResp dtos.LoginResponse
	if _, err := provider.DoJSON(ctx, "POST", "/accounts/login/", dtos.LoginRequest{
		Email:    *email,
		Password: *password,
	}, &loginResp); err != nil {
		log.Fatalf("login: %v", err)
	}

	ctx = auth.SetAccessToken(ctx, loginResp.Data.Token.Access)

	feedSvc := services.NewFeedService(
		services.NewEventService(provider),
		services.NewAnnouncementService(provider),
		services.NewDiscussionService(provider),
		services.NewPostService(provider),
		nil,
		nil,
	)

	feed, err := feedSvc.BuildFeed(ctx, nil, services.FeedOptions{
		Page:      *page,
		ActiveTab: *tab,
	})
	if err != nil {
		log.Fatalf("build feed: %v", err)
	}

	out, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		log.Fatalf("encode feed: %v", err)
	}
	fmt.Println(string(out))
}
