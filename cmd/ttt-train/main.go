// Training CLI for the tabular Q-learning agent. Hyperparameters and
// intervals come from flags or an optional YAML config file; the learning
// core itself only sees plain constructor values.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/IlikeChooros/go-ttt/pkg/minimax"
	"github.com/IlikeChooros/go-ttt/pkg/models"
	"github.com/IlikeChooros/go-ttt/pkg/qlearn"
	"github.com/IlikeChooros/go-ttt/pkg/report"
	"github.com/IlikeChooros/go-ttt/pkg/trainer"
	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

type fileConfig struct {
	QAgent struct {
		LearningRate   float64 `yaml:"learning_rate"`
		DiscountFactor float64 `yaml:"discount_factor"`
		EpsilonStart   float64 `yaml:"epsilon_start"`
	} `yaml:"q_agent"`
	Training struct {
		Games         int     `yaml:"games"`
		PrintInterval int     `yaml:"print_interval"`
		DecayEvery    int     `yaml:"decay_every"`
		DecayRate     float64 `yaml:"decay_rate"`
		MinEpsilon    float64 `yaml:"min_epsilon"`
	} `yaml:"training"`
}

func defaultConfig() fileConfig {
	cfg := fileConfig{}
	cfg.QAgent.LearningRate = qlearn.DefaultAlpha
	cfg.QAgent.DiscountFactor = qlearn.DefaultGamma
	cfg.QAgent.EpsilonStart = 0.3
	cfg.Training.Games = 10000
	cfg.Training.PrintInterval = 500
	cfg.Training.DecayEvery = 100
	cfg.Training.DecayRate = qlearn.DefaultDecay
	cfg.Training.MinEpsilon = qlearn.DefaultMinEps
	return cfg
}

func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return cfg, yaml.Unmarshal(data, &cfg)
}

func fatal(out *termenv.Output, err error) {
	fmt.Fprintln(os.Stderr, out.String("error: "+err.Error()).Foreground(termenv.ANSIRed))
	os.Exit(1)
}

func main() {
	mode := flag.String("mode", "random",
		"training mode: random | minimax | selfplay | curriculum | eval")
	difficulty := flag.String("difficulty", "perfect", "minimax opponent difficulty")
	games := flag.Int("games", 0, "number of games (0 = config value)")
	configPath := flag.String("config", "", "optional YAML config file")
	loadName := flag.String("load", "", "model to load before training")
	saveName := flag.String("save", "", "model name to save after training (empty = timestamped, '-' = skip)")
	modelsDir := flag.String("models", "models", "model directory")
	chartPath := flag.String("chart", "", "write a win-rate HTML chart to this path")
	flag.Parse()

	out := termenv.NewOutput(os.Stdout)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(out, err)
	}
	if *games <= 0 {
		*games = cfg.Training.Games
	}

	agent := qlearn.NewAgent(ttt.Cross,
		cfg.QAgent.LearningRate, cfg.QAgent.DiscountFactor, cfg.QAgent.EpsilonStart)
	if *loadName != "" {
		if err := models.Load(*modelsDir, *loadName, agent); err != nil {
			fatal(out, err)
		}
		fmt.Println(out.String("loaded model " + *loadName).Foreground(termenv.ANSICyan))
	}

	t := trainer.New(agent, trainer.Config{
		DecayEvery: cfg.Training.DecayEvery,
		DecayRate:  cfg.Training.DecayRate,
		MinEpsilon: cfg.Training.MinEpsilon,
	})

	recorder := report.NewRecorder()
	listener := trainer.NewListener().
		SetGameInterval(cfg.Training.PrintInterval).
		OnGame(func(st trainer.TrainStats) {
			recorder.Add(st.Game, st.Stats.WinRate(), st.Epsilon)
			fmt.Printf("%s win-rate=%.3f eps=%.3f |Q|=%d\n",
				out.String(fmt.Sprintf("game %d/%d:", st.Game, st.Games)).Bold(),
				st.Stats.WinRate(), st.Epsilon, st.TableSize)
		}).
		OnStop(func(st trainer.TrainStats) {
			fmt.Printf("\nsummary: games=%d W/L/D=%d/%d/%d win-rate=%.3f |Q|=%d\n",
				st.Stats.GamesPlayed, st.Stats.Wins, st.Stats.Losses, st.Stats.Draws,
				st.Stats.WinRate(), st.TableSize)
		})
	t.SetListener(listener)

	switch strings.ToLower(*mode) {
	case "random":
		t.Run(*games, func(mark ttt.Mark) trainer.Player {
			return trainer.NewRandomPlayer(mark)
		})

	case "minimax":
		d, err := minimax.ParseDifficulty(*difficulty)
		if err != nil {
			fatal(out, err)
		}
		t.Run(*games, func(mark ttt.Mark) trainer.Player {
			return minimax.NewPlayer(mark, d)
		})

	case "selfplay":
		other := qlearn.NewAgent(ttt.Circle,
			cfg.QAgent.LearningRate, cfg.QAgent.DiscountFactor, cfg.QAgent.EpsilonStart)
		t.RunSelfPlay(other, *games)

	case "curriculum":
		t.RunCurriculum(*games)

	case "eval":
		for _, res := range trainer.EvaluateVsAll(agent, *games) {
			fmt.Printf("%-20s | win-rate=%.3f (%dW/%dL/%dD)\n",
				res.Name, res.Stats.WinRate(),
				res.Stats.Wins, res.Stats.Losses, res.Stats.Draws)
		}
		return

	default:
		fatal(out, fmt.Errorf("unknown mode %q", *mode))
	}

	if *saveName != "-" {
		path, err := models.Save(*modelsDir, *saveName, agent)
		if err != nil {
			fatal(out, err)
		}
		fmt.Println(out.String("model saved to " + path).Foreground(termenv.ANSIGreen))
	}

	if *chartPath != "" && recorder.Len() > 0 {
		if err := recorder.RenderHTML(*chartPath); err != nil {
			fatal(out, err)
		}
		fmt.Println(out.String("chart written to " + *chartPath).Foreground(termenv.ANSIGreen))
	}
}
