// internal/tui/app.go
//
// The interactive program: main menu and mode flows, wiring screens to
// the engine, the score store, and player profiles.
// Screens:
//   - Play vs Computer: rules setup, generated secret, guess loop.
//   - Pass & Play: rules setup, hidden secret entry, guess loop.
//   - Daily Challenge: shared per-date secret, one recorded result/day.
//   - High Scores: overall and today's daily board.
//   - Profiles: register/login, stats, recent games.
//
// Finished games are recorded best-effort: persistence trouble is logged
// and never interrupts play.

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alivaezii/mastermindgame/assets"
	"github.com/alivaezii/mastermindgame/internal/config"
	"github.com/alivaezii/mastermindgame/internal/daily"
	"github.com/alivaezii/mastermindgame/internal/game"
	"github.com/alivaezii/mastermindgame/internal/players"
	"github.com/alivaezii/mastermindgame/internal/scoreboard"
)

// App owns one interactive session.
type App struct {
	cfg     *config.Config
	scores  scoreboard.Store
	players *players.Store   // nil when the database is unavailable
	profile *players.Profile // current login; nil plays as guest
}

// NewApp wires the interactive session.
func NewApp(cfg *config.Config, scores scoreboard.Store, ps *players.Store) *App {
	return &App{cfg: cfg, scores: scores, players: ps}
}

// Run shows the main menu until the player quits.
func (a *App) Run() error {
	for {
		title := "MASTERMIND"
		if a.profile != nil {
			title = fmt.Sprintf("MASTERMIND (%s)", a.profile.Name)
		}
		menu := NewMenu(title, []MenuItem{
			{Label: "Play vs Computer", Value: "pvc"},
			{Label: "Pass & Play", Value: "pvp"},
			{Label: "Daily Challenge", Value: "daily"},
			{Label: "High Scores", Value: "scores"},
			{Label: "Profiles", Value: "profiles"},
			{Label: "Quit", Value: "quit"},
		})
		menu.Header = assets.Banner()

		var err error
		switch menu.Show() {
		case "pvc":
			err = a.playPvC()
		case "pvp":
			err = a.playPvP()
		case "daily":
			err = a.playDaily()
		case "scores":
			err = a.showHighScores()
		case "profiles":
			err = a.profilesScreen()
		case "quit", "":
			fmt.Println("Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ------------------------------ game modes ---------------------------------

func (a *App) playPvC() error {
	rules, err := a.promptRules()
	if err != nil {
		return err
	}
	name, err := a.promptName()
	if err != nil {
		return err
	}

	g, err := game.New(rules, nil)
	if err != nil {
		fmt.Printf("Cannot start game: %v\n", err)
		return a.pressEnter()
	}

	finished, err := PlayLoop(g, NewPalette(rules.Alphabet, a.cfg.NoColor))
	if err != nil || !finished {
		return err
	}
	a.finishGame(g, name, scoreboard.ModePvC)
	return a.pressEnter()
}

func (a *App) playPvP() error {
	rules, err := a.promptRules()
	if err != nil {
		return err
	}

	fmt.Println("\nCodemaker: enter the secret. Input stays hidden; hand over the keyboard afterwards.")
	g, err := a.promptSecret(rules)
	if err != nil {
		return err
	}
	if g == nil { // codemaker cancelled
		return nil
	}

	name, err := a.promptName()
	if err != nil {
		return err
	}

	finished, err := PlayLoop(g, NewPalette(rules.Alphabet, a.cfg.NoColor))
	if err != nil || !finished {
		return err
	}
	a.finishGame(g, name, scoreboard.ModePvP)
	return a.pressEnter()
}

func (a *App) playDaily() error {
	name, err := a.promptName()
	if err != nil {
		return err
	}

	ctx := context.Background()
	today := daily.DateKey(time.Now())
	if played, err := a.scores.AlreadyPlayedDaily(ctx, name, today); err == nil && played {
		fmt.Printf("\n%s already has a result for %s. The first finished game of the day counts.\n\n", name, today)
		a.printDailyBoard(today)
		return a.pressEnter()
	}

	g, err := daily.NewGame(time.Now(), a.cfg.DailySalt)
	if err != nil {
		fmt.Printf("Cannot start daily game: %v\n", err)
		return a.pressEnter()
	}

	fmt.Printf("\nDaily challenge for %s: everyone cracks the same code today.\n", today)
	finished, err := PlayLoop(g, NewPalette(g.Rules().Alphabet, a.cfg.NoColor))
	if err != nil {
		return err
	}
	if !finished {
		// Abandoned dailies are not recorded; the player may retry today.
		return nil
	}
	a.finishGame(g, name, scoreboard.ModeDaily)
	fmt.Println()
	a.printDailyBoard(today)
	return a.pressEnter()
}

// promptRules walks through game setup, retrying until consistent.
func (a *App) promptRules() (game.Rules, error) {
	clearScreen()
	fmt.Println("Game setup")
	for {
		length, err := ReadInt("Code length", 4, 1, 10)
		if err != nil {
			return game.Rules{}, err
		}
		colors, err := ReadInt("Colors", MaxColors, 2, MaxColors)
		if err != nil {
			return game.Rules{}, err
		}
		alphabet, err := AlphabetForColors(colors)
		if err != nil {
			return game.Rules{}, err
		}
		dups, err := ReadYesNo("Allow repeated colors", true)
		if err != nil {
			return game.Rules{}, err
		}
		attempts, err := ReadInt("Attempts", 10, 1, 20)
		if err != nil {
			return game.Rules{}, err
		}

		rules, err := game.NewRules(length, alphabet, dups, attempts)
		if err != nil {
			// e.g. length 6 without repeats over 4 colors
			fmt.Printf("Invalid setup: %v\n\n", err)
			continue
		}
		return rules, nil
	}
}

// promptSecret reads the codemaker's hidden secret until it validates.
// Returns nil game when the codemaker enters a blank line to cancel.
func (a *App) promptSecret(rules game.Rules) (*game.Game, error) {
	pal := NewPalette(rules.Alphabet, a.cfg.NoColor)
	fmt.Printf("Legend: %s\n", pal.Legend())
	for {
		s, err := ReadSecret(fmt.Sprintf("Secret (%d symbols, blank cancels): ", rules.Length))
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		g, err := game.NewWithSecret(rules, game.Code(s))
		if err != nil {
			fmt.Printf("Rejected: %v\n", err)
			continue
		}
		return g, nil
	}
}

// promptName asks for the name scores are recorded under.
func (a *App) promptName() (string, error) {
	def := "player"
	if a.profile != nil {
		def = a.profile.Name
	}
	return ReadInputDefault("Name for the board", def)
}

// finishGame records the result. Failures are logged, never fatal.
func (a *App) finishGame(g *game.Game, name string, mode scoreboard.Mode) {
	ctx := context.Background()
	score := scoreboard.Calculate(g.Won(), g.AttemptsUsed(), g.Rules().MaxAttempts)

	e := &scoreboard.Entry{
		PlayerName:  name,
		Mode:        mode,
		Won:         g.Won(),
		Attempts:    g.AttemptsUsed(),
		MaxAttempts: g.Rules().MaxAttempts,
		Score:       score,
		DateKey:     daily.DateKey(time.Now()),
	}
	if err := a.scores.Save(ctx, e); err != nil {
		log.Warn().Err(err).Msg("save score")
	}

	if a.profile != nil && a.players != nil && name == a.profile.Name {
		if err := a.players.BumpStats(ctx, a.profile.ID, g.Won()); err != nil {
			log.Warn().Err(err).Str("player", a.profile.Name).Msg("bump stats")
		}
	}

	fmt.Printf("Score: %d\n", score)
}

// ------------------------------ high scores --------------------------------

func (a *App) showHighScores() error {
	ctx := context.Background()
	clearScreen()

	fmt.Println("HIGH SCORES")
	top, err := a.scores.Top(ctx, scoreboard.DefaultLimit)
	if err != nil {
		fmt.Printf("Cannot read the board: %v\n", err)
		return a.pressEnter()
	}
	PrintEntries(top)

	today := daily.DateKey(time.Now())
	fmt.Printf("\nDAILY BOARD %s\n", today)
	a.printDailyBoard(today)
	return a.pressEnter()
}

func (a *App) printDailyBoard(dateKey string) {
	rows, err := a.scores.TopForDate(context.Background(), dateKey, scoreboard.DefaultLimit)
	if err != nil {
		fmt.Printf("Cannot read the daily board: %v\n", err)
		return
	}
	PrintEntries(rows)
}

// PrintEntries renders one ranked board in the fixed-width layout shared by
// the menus and the top subcommand.
func PrintEntries(entries []scoreboard.Entry) {
	if len(entries) == 0 {
		fmt.Println("  (no games recorded yet)")
		return
	}
	for i, e := range entries {
		outcome := "won"
		if !e.Won {
			outcome = "lost"
		}
		fmt.Printf("%3d. %-24s %5d  %-5s  %s in %d/%d  %s\n",
			i+1, e.PlayerName, e.Score, e.Mode, outcome, e.Attempts, e.MaxAttempts,
			e.CreatedAt.Format("2006-01-02"))
	}
}

// ------------------------------- profiles ----------------------------------

func (a *App) profilesScreen() error {
	if a.players == nil {
		clearScreen()
		fmt.Println("Profiles need the database, which could not be opened.")
		fmt.Println("Scores still work for this session; see the log for details.")
		return a.pressEnter()
	}

	for {
		var items []MenuItem
		title := "PROFILES"
		if a.profile == nil {
			items = []MenuItem{
				{Label: "Log in", Value: "login"},
				{Label: "Register", Value: "register"},
				{Label: "Back", Value: ""},
			}
		} else {
			title = fmt.Sprintf("PROFILES (%s)", a.profile.Name)
			items = []MenuItem{
				{Label: "My stats", Value: "stats"},
				{Label: "Log out", Value: "logout"},
				{Label: "Back", Value: ""},
			}
		}

		var err error
		switch NewMenu(title, items).Show() {
		case "login":
			err = a.loginScreen()
		case "register":
			err = a.registerScreen()
		case "stats":
			err = a.statsScreen()
		case "logout":
			a.profile = nil
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) loginScreen() error {
	clearScreen()
	fmt.Println("Log in")
	name, err := ReadInput("Name: ")
	if err != nil {
		return err
	}
	pass, err := ReadSecret("Passphrase: ")
	if err != nil {
		return err
	}

	p, err := a.players.Login(context.Background(), name, pass)
	if err != nil {
		fmt.Printf("Login failed: %v\n", err)
		return a.pressEnter()
	}
	a.profile = p
	fmt.Printf("Welcome back, %s!\n", p.Name)
	return a.pressEnter()
}

func (a *App) registerScreen() error {
	clearScreen()
	fmt.Println("Register (name: 3-24 letters, digits, underscore)")
	name, err := ReadInput("Name: ")
	if err != nil {
		return err
	}
	pass, err := ReadSecret("Passphrase (8+ chars): ")
	if err != nil {
		return err
	}
	confirm, err := ReadSecret("Confirm passphrase: ")
	if err != nil {
		return err
	}
	if pass != confirm {
		fmt.Println("Passphrases do not match.")
		return a.pressEnter()
	}

	p, err := a.players.Register(context.Background(), name, pass)
	if err != nil {
		fmt.Printf("Registration failed: %v\n", err)
		return a.pressEnter()
	}
	a.profile = p
	fmt.Printf("Profile created. Playing as %s.\n", p.Name)
	return a.pressEnter()
}

func (a *App) statsScreen() error {
	ctx := context.Background()
	clearScreen()

	// Re-read so stats reflect games played this session.
	p, err := a.players.Get(ctx, a.profile.Name)
	if err != nil {
		fmt.Printf("Cannot load profile: %v\n", err)
		return a.pressEnter()
	}
	a.profile = p

	fmt.Printf("%s\n", p.Name)
	fmt.Printf("  Games:       %d\n", p.Games)
	fmt.Printf("  Wins:        %d\n", p.Wins)
	fmt.Printf("  Streak:      %d\n", p.Streak)
	fmt.Printf("  Best streak: %d\n", p.BestStreak)
	fmt.Printf("  Member since %s\n", p.CreatedAt.Format("2006-01-02"))

	recent, err := a.scores.RecentForPlayer(ctx, p.Name, 5)
	if err == nil && len(recent) > 0 {
		fmt.Println("\nRecent games:")
		PrintEntries(recent)
	}
	return a.pressEnter()
}

// ------------------------------- helpers -----------------------------------

func (a *App) pressEnter() error {
	_, err := ReadInput("\nPress Enter to continue...")
	return err
}
