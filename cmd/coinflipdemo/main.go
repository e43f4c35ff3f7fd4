// Command coinflipdemo runs a single in-process n-party coin-flipping
// protocol instance and prints a colorized report of the outcome: the
// shared random output and the warning of every flagged dealer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/lavode/coinflip/coinflip"
	"github.com/lavode/coinflip/config"
	"github.com/lavode/coinflip/gf2"
	"github.com/lavode/coinflip/rng"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML demo configuration file")
	flag.Parse()

	out := colorable.NewColorable(os.Stdout)
	log := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: !isatty.IsTerminal(os.Stdout.Fd())}).With().Timestamp().Logger()

	cfg := config.Demo{N: 5, K: 8, Hardcode: true}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading configuration")
		}
		cfg = loaded
	}

	if err := run(log, cfg); err != nil {
		log.Fatal().Err(err).Msg("protocol run failed")
	}
}

func run(log zerolog.Logger, cfg config.Demo) error {
	var src rng.Source
	if cfg.Seed != "" {
		src = rng.NewDeterministic([]byte(cfg.Seed))
	} else {
		src = rng.NewCrypto()
	}

	parties := make([]*coinflip.Party, cfg.N)
	for i := range parties {
		parties[i] = coinflip.NewParty(cfg.N, cfg.K, src, log.With().Int("party", i).Logger())
	}

	publicKeys := make([][]coinflip.PublicKeyTriple, cfg.N)
	for i, p := range parties {
		pub, err := p.GenerateKeys(cfg.Hardcode)
		if err != nil {
			return fmt.Errorf("party %d generating keys: %w", i, err)
		}
		publicKeys[i] = pub
	}

	polyMod, err := gf2.FindIrreducible(cfg.K, src)
	if err != nil {
		return fmt.Errorf("drawing shared sharing-polynomial field: %w", err)
	}

	encDeal := make([][]coinflip.CiphertextPair, cfg.N)
	for d, dealer := range parties {
		sharedPublicKeys := make([]coinflip.PublicKeyTriple, cfg.N)
		for i := 0; i < cfg.N; i++ {
			sharedPublicKeys[i] = publicKeys[i][d]
		}
		enc, err := dealer.Share(sharedPublicKeys, &polyMod)
		if err != nil {
			return fmt.Errorf("dealer %d sharing: %w", d, err)
		}
		encDeal[d] = enc
	}

	privateKeys := make([][]uint64, cfg.N)
	for i, p := range parties {
		privateKeys[i] = p.RevealPrivateKeys()
	}

	sharedPublicKeys := make([][]coinflip.PublicKeyTriple, cfg.N)
	sharedSecretKeys := make([][]uint64, cfg.N)
	for d := 0; d < cfg.N; d++ {
		sharedPublicKeys[d] = make([]coinflip.PublicKeyTriple, cfg.N)
		sharedSecretKeys[d] = make([]uint64, cfg.N)
		for i := 0; i < cfg.N; i++ {
			sharedPublicKeys[d][i] = publicKeys[i][d]
			sharedSecretKeys[d][i] = privateKeys[i][d]
		}
	}

	out, err := parties[0].Reconstruct(encDeal, sharedPublicKeys, sharedSecretKeys, polyMod)
	if err != nil {
		return fmt.Errorf("reconstructing: %w", err)
	}

	flagged := flaggedDealers(parties[0].Warnings())
	log.Info().Hex("output", out).Ints("flaggedDealers", flagged).Msg("protocol complete")

	for _, d := range flagged {
		log.Warn().Int("dealer", d).Str("warning", parties[0].Warnings()[d].String()).Msg("dealer flagged")
	}

	return nil
}

// flaggedDealers returns, in ascending order, every dealer index whose
// warning is not WarningNone. Dealer indices are visited in order, so the
// result is already sorted.
func flaggedDealers(warnings []coinflip.Warning) []int {
	flagged := make([]int, 0)
	for i, w := range warnings {
		if w != coinflip.WarningNone {
			flagged = append(flagged, i)
		}
	}
	return flagged
}
