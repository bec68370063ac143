// Package game implements skill-based dart games between named players.
//
// Every player aims at the same fixed point. A player's skill, from 1 to
// 10, controls how far a throw strays from it: skill 10 always lands on the
// aim point, lower skills scatter uniformly up to (10-skill)/scale on each
// axis.
//
// # Basic Usage
//
//	players := []game.Player{{Name: "Alice", Skill: 8}, {Name: "Bob", Skill: 4}}
//	res, err := game.Play(ctx, players, 10, game.Standard, game.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Winner, res.Scores.Map())
//
// # Scoring
//
// In a Distance game each throw scores scale minus its distance from the aim
// point, so wild throws can score negative. In a Standard game a throw that
// lands strictly inside the circle of radius scale scores one point.
//
// The player with the highest total wins. Ties go to the player listed
// first; Result.Tied and Result.TiedWith report them.
//
// # Deterministic Testing
//
// Inject a random source with WithSource or WithSeed:
//
//	src := randutil.NewSequence(0.5, 0.5)
//	g, _ := game.New(players, 1, game.Distance, game.WithSource(src))
package game
