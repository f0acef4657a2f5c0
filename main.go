package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pixelgram/pixelgram/fallback"
	"github.com/pixelgram/pixelgram/gateway"
	"github.com/pixelgram/pixelgram/helpers"
	"github.com/pixelgram/pixelgram/model"
	"github.com/pixelgram/pixelgram/page"
	"github.com/pixelgram/pixelgram/session"
)

const defaultAPIURL = "https://insta-backend-gbnb.onrender.com/api"

// stdinPrompter asks confirmations on the terminal
type stdinPrompter struct {
	in *bufio.Reader
}

func (p stdinPrompter) Confirm(message string) bool {
	fmt.Print(message + " [y/N] ")
	line, _ := p.in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (p stdinPrompter) Input(message string) string {
	fmt.Print(message + " ")
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (p stdinPrompter) Alert(message string) {
	fmt.Println(message)
}

func main() {
	// Get key-value in .env file
	godotenv.Load()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	var storage session.Storage
	if os.Getenv("MEM_URL") != "" {
		storage = session.NewMemcachedStorage(os.Getenv("MEM_URL"))
	} else {
		storage = session.NewMemoryStorage()
	}

	sess := session.New(storage)
	gw := gateway.New(apiURL, helpers.InitTracer(), sess)

	// Session controller: every session transition lands here,
	// including 401 answers caught deep in the gateway.
	go func() {
		for event := range sess.Events() {
			switch event {
			case session.Expired:
				fmt.Println("\nSession expired, please sign in again.")
			case session.SignedOut:
				fmt.Println("\nSigned out.")
			}
		}
	}()

	if os.Getenv("METRICS_PORT") != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(helpers.GetRegistery(), promhttp.HandlerOpts{}))

			server := &http.Server{
				Addr:              ":" + os.Getenv("METRICS_PORT"),
				ReadHeaderTimeout: 3 * time.Second,
			}

			if err := server.ListenAndServe(); err != nil {
				log.Println(err)
			}
		}()
	}

	run(gw, sess)
}

// run is the command loop of the terminal front end
func run(gw *gateway.Client, sess *session.Session) {
	in := bufio.NewReader(os.Stdin)
	prompt := stdinPrompter{in: in}

	auth := page.NewAuth(gw, sess)
	feed := page.NewFeed(gw)
	profile := page.NewProfile(gw, sess)
	search := page.NewSearch(gw, sess)
	stories := page.NewStories(gw, sess)

	if err := auth.Restore(context.Background()); err != nil {
		log.Printf("(main) session restore failed: %v", err)
	}

	fmt.Println("pixelgram - type 'help' for commands")
	for {
		fmt.Print("> ")
		line, err := in.ReadString('\n')
		if err != nil {
			return
		}

		command, argument, _ := strings.Cut(strings.TrimSpace(line), " ")
		ctx := context.Background()

		switch command {
		case "", "#":
		case "help":
			fmt.Println("feed, explore, stories, search <query>, suggested, profile [username], post, like <post>, comment <post> <text>, follow <user>, set-bio <text>, register, login, logout, delete-post <post>, delete-account, quit")
		case "feed":
			printPosts(feed.Load(ctx))
		case "explore":
			posts, err := gw.Explore(ctx)
			if err != nil {
				fmt.Println("Explore is unavailable right now.")
				break
			}
			printPosts(posts)
		case "suggested":
			users, err := gw.SuggestedUsers(ctx)
			if err != nil || len(users) == 0 {
				users = fallback.SuggestedUsers()
			}
			for _, user := range users {
				fmt.Printf("  %s - %s\n", user.Username, user.FullName)
			}
		case "stories":
			for _, story := range stories.Load(ctx) {
				fmt.Printf("  (%s) %s\n", story.Label, story.User.Picture())
			}
		case "search":
			search.SetQuery(argument)
			time.Sleep(page.DefaultQuiescence + 200*time.Millisecond)
			results := search.Results()
			if strings.TrimSpace(argument) != "" && len(results) == 0 {
				fmt.Printf("No users found for %q\n", argument)
			}
			for _, user := range results {
				fmt.Printf("  %s - %s\n", user.Username, user.FullName)
			}
		case "profile":
			user := profile.Load(ctx, argument)
			if user == nil {
				fmt.Println("User not found")
				break
			}
			fmt.Printf("%s (%s) - %d posts, %d followers, %d following\n",
				user.Username, user.FullName, user.PostTotal(), user.FollowerTotal(), user.FollowingTotal())
			printPosts(profile.Posts())
			if profile.IsOwn() {
				fmt.Println("This is your profile: delete-post and delete-account are available.")
			}
		case "like":
			if err := feed.Like(ctx, argument); err != nil {
				fmt.Println("Unable to like this post.")
			}
		case "comment":
			postID, text, _ := strings.Cut(argument, " ")
			if err := feed.Comment(ctx, postID, text); err != nil {
				fmt.Println("Unable to comment on this post.")
			}
		case "follow":
			if err := search.Follow(ctx, argument); err != nil {
				fmt.Println("Unable to follow this user.")
			}
		case "post":
			body := gateway.PostBody{
				ImageURL: prompt.Input("Image URL:"),
				Caption:  prompt.Input("Caption:"),
				Location: prompt.Input("Location:"),
			}
			if err := gw.CreatePost(ctx, body); err != nil {
				fmt.Println("Unable to publish this post.")
			}
		case "set-bio":
			if _, err := gw.UpdateProfile(ctx, gateway.ProfileUpdateBody{Bio: &argument}); err != nil {
				fmt.Println("Unable to update the profile.")
			}
		case "register":
			form := gateway.RegisterBody{
				Username: prompt.Input("Username:"),
				Email:    prompt.Input("Email:"),
				FullName: prompt.Input("Full name:"),
				Password: prompt.Input("Password:"),
			}
			if err := auth.Register(ctx, form); err != nil {
				fmt.Println("Registration failed:", err)
			}
		case "login":
			credentials := gateway.Credentials{
				Email:    prompt.Input("Email:"),
				Password: prompt.Input("Password:"),
			}
			if err := auth.SignIn(ctx, credentials); err != nil {
				fmt.Println("Sign-in failed:", err)
			}
		case "logout":
			auth.SignOut()
		case "delete-post":
			profile.Select(argument)
			profile.DeletePost(ctx, argument, prompt)
		case "delete-account":
			if profile.DeleteAccount(ctx, prompt) {
				fmt.Println("Back to the login prompt.")
			}
		case "quit", "exit":
			return
		default:
			fmt.Println("Unknown command, type 'help'.")
		}
	}
}

func printPosts(posts []model.Post) {
	for _, item := range posts {
		owner := ""
		if item.User != nil {
			owner = item.User.Username
		}
		fmt.Printf("  [%s] %s: %s (%d likes, %d comments)\n",
			item.Key(), owner, item.Caption, int64(item.Likes), len(item.Comments))
	}
}
