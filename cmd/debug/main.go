package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"janggi/internal/janggi"
)

func main() {
	code := flag.String("position", janggi.InitialPosition, "position code to inspect")
	list := flag.Bool("moves", false, "list every legal move of the team to move")
	flag.Parse()

	g, err := janggi.Decode(*code)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	if err := g.Render(os.Stdout); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Position:", g.Encode())
	fmt.Printf("Hash: %016x\n", g.Hash())

	moves := g.LegalMoves(g.Turn())
	fmt.Println("Legal moves:", len(moves))
	if *list {
		for _, m := range moves {
			p, _ := g.PieceAt(m.From)
			fmt.Printf("  %-7s %s\n", m, p.Kind)
		}
	}
	for _, t := range []janggi.Team{janggi.Red, janggi.Blue} {
		fmt.Printf("%s: in check=%v checkmated=%v\n", t, g.IsInCheck(t), g.IsCheckmate(t))
	}
}
