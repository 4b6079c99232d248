package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"gomoku/internal/domain/board"
	"gomoku/internal/engine"
	gameErrors "gomoku/internal/errors"
)

type settings struct {
	Games     int   `mapstructure:"games"`
	Depth     int   `mapstructure:"depth"`
	MaxNodes  int64 `mapstructure:"max-nodes"`
	Seed      int64 `mapstructure:"seed"`
	Workers   int   `mapstructure:"workers"`
	ShowBoard bool  `mapstructure:"show-board"`
}

type gameResult struct {
	Winner board.Player
	Draw   bool
	Moves  int
	Board  board.Board
}

func main() {
	flags := pflag.NewFlagSet("selfplay", pflag.ExitOnError)
	flags.Int("games", 10, "number of games to play")
	flags.Int("depth", 2, "search depth for both sides")
	flags.Int64("max-nodes", 0, "node budget per move, 0 for unlimited")
	flags.Int64("seed", time.Now().UnixNano(), "seed for opening book randomness")
	flags.Int("workers", 1, "goroutines for root search")
	flags.Bool("show-board", false, "print the final board of every game")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	v.SetEnvPrefix("SELFPLAY")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log := logger.Sugar()
	defer log.Sync()

	if err := run(context.Background(), s, log); err != nil {
		log.Fatalw("self play failed", zap.Error(err))
	}
}

func run(ctx context.Context, s settings, log *zap.SugaredLogger) error {
	if s.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", s.Games)
	}

	bar := newBar(s.Games, "self play")
	var black, white, draws, moves int
	for i := 0; i < s.Games; i++ {
		eng := engine.New(engine.Options{
			Depth:    s.Depth,
			MaxNodes: s.MaxNodes,
			Workers:  s.Workers,
			UseBook:  true,
		}, rand.New(rand.NewSource(s.Seed+int64(i))), log)

		res, err := playGame(ctx, eng, s.Depth)
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		switch {
		case res.Draw:
			draws++
		case res.Winner == board.Black:
			black++
		default:
			white++
		}
		moves += res.Moves
		_ = bar.Add(1)

		if s.ShowBoard {
			fmt.Printf("\n%s\n", aurora.Bold(fmt.Sprintf("game %d: %s", i+1, describe(res))))
			fmt.Println(renderBoard(&res.Board))
		}
	}
	_ = bar.Finish()

	fmt.Println()
	fmt.Println(aurora.Bold("results"))
	fmt.Printf("  black wins: %s\n", aurora.Red(black))
	fmt.Printf("  white wins: %s\n", aurora.Cyan(white))
	fmt.Printf("  draws:      %s\n", aurora.Yellow(draws))
	fmt.Printf("  avg moves:  %.1f\n", float64(moves)/float64(s.Games))
	return nil
}

// playGame lets the engine play both sides until someone completes five or
// the board fills up.
func playGame(ctx context.Context, eng *engine.Engine, depth int) (gameResult, error) {
	b := board.New()
	side := board.Black
	for {
		ans, err := eng.BestMove(ctx, b, side, depth)
		if errors.Is(err, gameErrors.ErrNoMoves) {
			return gameResult{Draw: true, Moves: b.Stones(), Board: b}, nil
		}
		if err != nil {
			return gameResult{}, err
		}
		if err = b.Place(ans.Move, side); err != nil {
			return gameResult{}, err
		}
		if b.CheckWin(ans.Move, side) {
			return gameResult{Winner: side, Moves: b.Stones(), Board: b}, nil
		}
		if b.CheckDraw() {
			return gameResult{Draw: true, Moves: b.Stones(), Board: b}, nil
		}
		side = side.Opponent()
	}
}

func describe(res gameResult) string {
	if res.Draw {
		return fmt.Sprintf("draw after %d moves", res.Moves)
	}
	return fmt.Sprintf("%s wins after %d moves", res.Winner, res.Moves)
}

func renderBoard(b *board.Board) string {
	var sb strings.Builder
	last, hasLast := b.LastMove()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			m := board.Move{Row: r, Col: c}
			var cell aurora.Value
			switch b.At(m) {
			case board.BlackCell:
				cell = aurora.Red("X")
			case board.WhiteCell:
				cell = aurora.Cyan("O")
			default:
				cell = aurora.BrightBlack(".")
			}
			if hasLast && m == last {
				cell = cell.Bold()
			}
			sb.WriteString(cell.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func newBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}
