package lem

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// GenerateSamples runs an ensemble of n realizations over a p-dimensional
// Latin hypercube: gen maps a unit-interval sample vector to a built
// Evaluator (the caller scales the parameters, typically with
// mmaths.LinearTransform). Each realization runs its full iteration count
// and writes its final topography; nwrkrs realizations run concurrently,
// each single-threaded internally.
func GenerateSamples(gen func(u []float64) (*Evaluator, error), n, p, nwrkrs int, outdir string) {

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, p, false)

	outdirbatch := outdir + time.Now().Format("060102150405") // batch number = date
	func() {                                                  // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < p; j++ {
				lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
			}
		}
		mmio.WriteLines(outdirbatch+".samplespace.csv", lns)
	}()

	var wg sync.WaitGroup
	smpls := make(chan int)
	for w := 0; w < nwrkrs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range smpls {
				ut := make([]float64, p)
				for j := 0; j < p; j++ {
					ut[j] = sp.U[j][k]
				}
				ev, err := gen(ut)
				if err != nil {
					log.Printf(" GenerateSamples sample %d build error: %v\n", k, err)
					continue
				}
				bailed := false
				for j := 0; j < ev.Par.Nstep; j++ {
					if err := ev.RunStep(ev.Par.Dt); err != nil {
						log.Printf(" GenerateSamples sample %d: %v\n", k, err)
						bailed = true
						break
					}
				}
				if !bailed {
					writeFloats(fmt.Sprintf("%s.%d.z.bin", outdirbatch, k), ev.S.Z)
					writeFloats(fmt.Sprintf("%s.%d.dep.bin", outdirbatch, k), ev.S.Dep)
				}
			}
		}()
	}
	for k := 0; k < n; k++ {
		fmt.Printf(" >> releasing sample %d\n", k+1)
		smpls <- k
	}
	close(smpls)
	wg.Wait()
}
