package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/homier/chainmap"
)

type config struct {
	capacity   int
	loadFactor float64
	hash       string
}

var colors = [][2]string{
	{"apple", "red"},
	{"banana", "yellow"},
	{"carrot", "orange"},
	{"dog", "brown"},
	{"elephant", "gray"},
	{"frog", "green"},
	{"grape", "purple"},
	{"hat", "black"},
	{"ice cream", "white"},
	{"jacket", "blue"},
	{"kite", "pink"},
	{"lion", "golden"},
}

func hashFunc(name string) (chainmap.HashFunc[string], error) {
	switch name {
	case "polynomial":
		return chainmap.PolynomialHash[string], nil
	case "xxhash":
		return chainmap.XXHash[string], nil
	default:
		return nil, fmt.Errorf("unknown hash function %q", name)
	}
}

func run(log logrus.FieldLogger, cfg config) error {
	h, err := hashFunc(cfg.hash)
	if err != nil {
		return err
	}

	m, err := chainmap.New(
		chainmap.WithCapacity[string, string](cfg.capacity),
		chainmap.WithLoadFactor[string, string](cfg.loadFactor),
		chainmap.WithHashFunc[string, string](h),
		chainmap.WithLogger[string, string](log),
	)
	if err != nil {
		return fmt.Errorf("failed to create map: %w", err)
	}

	for _, kv := range colors {
		m.Set(kv[0], kv[1])
	}

	log.WithFields(logrus.Fields{"length": m.Len(), "capacity": m.Cap()}).Info("filled")

	m.Set("apple", "green")
	m.Set("dog", "dark brown")

	apple, _ := m.Get("apple")
	dog, _ := m.Get("dog")
	log.WithFields(logrus.Fields{"apple": apple, "dog": dog, "length": m.Len()}).Info("overwritten")

	m.Set("moon", "silver")
	log.WithFields(logrus.Fields{"length": m.Len(), "capacity": m.Cap()}).Info("grown")

	grape, ok := m.Get("grape")
	log.WithFields(logrus.Fields{"value": grape, "found": ok}).Info("get grape")
	log.WithField("has", m.Has("banana")).Info("has banana")
	log.WithField("removed", m.Remove("carrot")).Info("remove carrot")
	log.WithField("length", m.Len()).Info("after remove")

	log.WithField("keys", m.Keys()).Info("keys")
	log.WithField("values", m.Values()).Info("values")
	log.WithField("entries", m.Entries()).Info("entries")

	m.Clear()
	log.WithFields(logrus.Fields{"length": m.Len(), "capacity": m.Cap()}).Info("cleared")

	return nil
}

func main() {
	var (
		cfg     config
		verbose bool
		asJSON  bool
	)

	flag.IntVar(&cfg.capacity, "capacity", chainmap.DefaultCapacity, "initial number of buckets")
	flag.Float64Var(&cfg.loadFactor, "load-factor", chainmap.DefaultLoadFactor, "load factor in (0, 1]")
	flag.StringVar(&cfg.hash, "hash", "polynomial", "hash function: polynomial or xxhash")
	flag.BoolVar(&verbose, "verbose", false, "log resizes")
	flag.BoolVar(&asJSON, "json", false, "log as JSON")
	flag.Parse()

	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if asJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if err := run(log, cfg); err != nil {
		log.WithError(err).Error("demo failed")
		os.Exit(1)
	}
}
