package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	appcfg "github.com/hyeon-dev/ludo-sim/internal/config"
	"github.com/hyeon-dev/ludo-sim/internal/obslog"
	"github.com/hyeon-dev/ludo-sim/internal/scenario"
	"github.com/hyeon-dev/ludo-sim/internal/session"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}

	path := cfg.ScenarioPath
	if len(os.Args) > 1 {
		path = strings.TrimSpace(os.Args[1])
	}
	if path == "" {
		log.Fatalf("usage: ludo-sim <scenario.yaml> (or set SCENARIO_PATH)")
	}

	sc, err := scenario.Load(path)
	if err != nil {
		log.Fatalf("scenario error: %v", err)
	}

	mgr := session.NewManager()
	sess, err := mgr.Create(sc.Players)
	if err != nil {
		log.Fatalf("session error: %v", err)
	}
	spaces, err := mgr.Play(sess.ID, sc.Turns)
	if err != nil {
		log.Fatalf("play error: %v", err)
	}

	if cfg.OutputFormat == "json" {
		res, err := mgr.Snapshot(sess.ID)
		if err != nil {
			log.Fatalf("snapshot error: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Fatalf("encode error: %v", err)
		}
		return
	}

	fmt.Println(strings.Join(spaces, " "))
	fmt.Printf("status: %s\n", sess.Game.Status())
}
