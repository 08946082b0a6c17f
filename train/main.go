package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/peanobrain"
	"github.com/unixpickle/peanobrain/exprtree"
	"github.com/unixpickle/serializer"
)

func main() {
	var additions int
	var maxNumeral int
	var sampleCount int
	var stepSize float64
	var batchSize int
	var outFile string
	var logInterval int
	flag.IntVar(&additions, "additions", 3, "max addition operators per expression")
	flag.IntVar(&maxNumeral, "maxnum", 9, "largest generated numeral")
	flag.IntVar(&sampleCount, "samples", 20000, "number of training samples")
	flag.Float64Var(&stepSize, "step", 0.001, "SGD step size")
	flag.IntVar(&batchSize, "batch", 16, "SGD batch size")
	flag.StringVar(&outFile, "file", "out_net", "output/input network file")
	flag.IntVar(&logInterval, "logint", 4, "log interval")
	flag.Parse()

	log.Println("Creating samples...")
	// Fixed seed so that we get the same samples every
	// time; the validation set still differs from the
	// training set.
	rand.Seed(123)
	gen := &exprtree.Generator{MaxAdditions: additions, MaxNumeral: maxNumeral}
	training, err := peanobrain.GenerateSamples(gen, sampleCount, 0)
	if err != nil {
		essentials.Die("Failed to generate samples:", err)
	}
	validation, err := peanobrain.GenerateSamples(gen, sampleCount/10+1, 0)
	if err != nil {
		essentials.Die("Failed to generate samples:", err)
	}
	rand.Seed(time.Now().UnixNano())

	var net *peanobrain.Network
	if _, err := os.Stat(outFile); os.IsNotExist(err) {
		log.Println("Creating new network...")
		net = peanobrain.NewNetwork(anyvec32.CurrentCreator())
	} else if err := serializer.LoadAny(outFile, &net); err != nil {
		essentials.Die("Failed to load network:", err)
	} else {
		log.Println("Loaded existing network.")
	}

	log.Println("Training (press ctrl+c to stop)...")
	trainer := &peanobrain.Trainer{Network: net}
	var iter int
	sgd := &anysgd.SGD{
		Fetcher:     trainer,
		Gradienter:  trainer,
		Transformer: &anysgd.Adam{},
		Samples:     training,
		Rater:       anysgd.ConstRater(stepSize),
		BatchSize:   batchSize,
		StatusFunc: func(b anysgd.Batch) {
			if iter%logInterval == 0 {
				valBatch, err := trainer.Fetch(validation.Slice(0, minInt(batchSize, validation.Len())))
				if err != nil {
					essentials.Die("Failed to fetch validation batch:", err)
				}
				val := trainer.TotalCost(valBatch).Output().Data()
				log.Printf("iter %d: cost=%v validation=%v", iter, trainer.LastCost, val)
			}
			iter++
		},
	}
	sgd.Run(stopChan())

	if err := serializer.SaveAny(outFile, net); err != nil {
		essentials.Die("Failed to save network:", err)
	}
}

func stopChan() <-chan struct{} {
	res := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		signal.Stop(sig)
		close(res)
	}()
	return res
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
