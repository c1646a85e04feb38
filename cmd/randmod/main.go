package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"ctsample/ctbig"
	"ctsample/prof"
	"ctsample/source"
)

func main() {
	configPath := flag.String("config", "", "JSON config (kind, seed, modulus); overrides -source and -seed")
	kindName := flag.String("source", string(source.ChaCha20), "byte stream: chacha20, shake256, keyed or system")
	seed := flag.Uint64("seed", 1, "seed for deterministic streams")
	n := flag.Int("n", 1, "number of samples")
	showProf := flag.Bool("prof", false, "print timing and attempt counts")
	flag.Parse()

	cfg := source.Config{Seed: *seed}
	if *configPath != "" {
		var err error
		if cfg, err = source.LoadConfig(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	} else {
		kind, err := source.ParseKind(*kindName)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Kind = kind
	}
	src, err := cfg.Open()
	if err != nil {
		log.Fatalf("open source: %v", err)
	}

	var modulus ctbig.NonZeroUint
	if cfg.Modulus != "" {
		if modulus, err = cfg.ModulusUint(); err != nil {
			log.Fatal(err)
		}
	} else if modulus, err = referenceModulus(src); err != nil {
		log.Fatalf("reference modulus: %v", err)
	}
	fmt.Println("modulus:", modulus.Get())

	prof.Enable(*showProf)
	for i := 0; i < *n; i++ {
		s, err := ctbig.SampleBelow(src, modulus)
		if err != nil {
			log.Fatalf("sample %d: %v", i, err)
		}
		fmt.Printf("sample[%d]: %s\n", i, s)
	}
	if *showProf {
		printProfile(prof.SnapshotAndReset())
	}
}

// referenceModulus keeps every limb at all ones except limb 0, which is the
// negation of an odd limb drawn from src.
func referenceModulus(src io.Reader) (ctbig.NonZeroUint, error) {
	special, err := ctbig.RandomNonZeroLimb(src)
	if err != nil {
		return ctbig.NonZeroUint{}, err
	}
	limbs := ctbig.Max.Limbs()
	limbs[0] = -special.Get()
	m, ok := ctbig.NewNonZero(ctbig.NewUint(limbs))
	if !ok {
		return ctbig.NonZeroUint{}, ctbig.ErrZeroModulus
	}
	return m, nil
}

func printProfile(entries []prof.Entry) {
	sum := prof.Summarize(entries)
	labels := make([]string, 0, len(sum))
	for l := range sum {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		s := sum[l]
		avg := time.Duration(0)
		if s.Calls > 0 {
			avg = s.Total / time.Duration(s.Calls)
		}
		fmt.Printf("%s: calls=%d attempts=%d total=%v avg=%v\n", l, s.Calls, s.Attempts, s.Total, avg)
	}
}
