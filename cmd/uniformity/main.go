package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math/bits"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/crypto/sha3"

	"ctsample/ctbig"
	"ctsample/source"
)

func main() {
	modFlag := flag.Uint64("modulus", 10, "non-zero modulus to sample below")
	draws := flag.Int("draws", 100000, "number of samples")
	bucketFlag := flag.Uint64("buckets", 0, "histogram buckets (default min(modulus, 32))")
	seed := flag.Uint64("seed", 1, "run seed")
	label := flag.String("label", "uniformity", "domain label mixed into the stream key")
	outPath := flag.String("out", "uniformity.html", "output HTML file")
	flag.Parse()

	modulus, ok := ctbig.NewNonZero(ctbig.FromUint64(*modFlag))
	if !ok {
		log.Fatal("-modulus must be non-zero")
	}
	m := *modFlag
	buckets, err := checkRun(m, *bucketFlag, *draws)
	if err != nil {
		log.Fatal(err)
	}

	src, err := source.NewKeyed(streamKey(*label, *seed))
	if err != nil {
		log.Fatal(err)
	}

	width := uint(bits.Len64(m))
	observed := make([]int, buckets)
	for i := 0; i < *draws; i++ {
		s, err := ctbig.SampleBelowN(src, modulus, width)
		if err != nil {
			log.Fatalf("draw %d: %v", i, err)
		}
		observed[bucketOf(uint64(s.Limb(0)), m, buckets)]++
	}

	expected, chi2 := chiSquare(observed, m, *draws)
	fmt.Printf("modulus=%d draws=%d buckets=%d chi2=%.3f (df=%d)\n", m, *draws, buckets, chi2, buckets-1)

	if err := render(*outPath, m, observed, expected, chi2); err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Println("wrote", *outPath)
}

// checkRun validates the flags and resolves the default bucket count.
func checkRun(m, buckets uint64, draws int) (uint64, error) {
	if draws <= 0 {
		return 0, fmt.Errorf("-draws must be positive, got %d", draws)
	}
	if buckets == 0 {
		buckets = min(m, 32)
	}
	if buckets > m {
		return 0, fmt.Errorf("-buckets %d exceeds modulus %d", buckets, m)
	}
	return buckets, nil
}

// chiSquare returns the expected count per bucket and the chi-square
// statistic of observed against it.
func chiSquare(observed []int, m uint64, draws int) ([]float64, float64) {
	buckets := uint64(len(observed))
	expected := make([]float64, buckets)
	chi2 := 0.0
	for k := uint64(0); k < buckets; k++ {
		size := ceilDiv(k+1, m, buckets) - ceilDiv(k, m, buckets)
		expected[k] = float64(draws) * float64(size) / float64(m)
		d := float64(observed[k]) - expected[k]
		chi2 += d * d / expected[k]
	}
	return expected, chi2
}

// streamKey derives the keyed-stream seed from the run label and seed.
func streamKey(label string, seed uint64) []byte {
	h := sha3.New256()
	h.Write([]byte(label))
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	h.Write(b[:])
	return h.Sum(nil)
}

// bucketOf is floor(v*buckets/m); v < m and buckets <= m.
func bucketOf(v, m, buckets uint64) uint64 {
	hi, lo := bits.Mul64(v, buckets)
	q, _ := bits.Div64(hi, lo, m)
	return q
}

// ceilDiv is ceil(k*m/buckets) for k <= buckets.
func ceilDiv(k, m, buckets uint64) uint64 {
	hi, lo := bits.Mul64(k, m)
	q, r := bits.Div64(hi, lo, buckets)
	if r != 0 {
		q++
	}
	return q
}

func render(path string, m uint64, observed []int, expected []float64, chi2 float64) error {
	page := components.NewPage().SetPageTitle("Rejection sampler uniformity")
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Samples below %d", m),
			Subtitle: fmt.Sprintf("chi-square %.3f over %d buckets", chi2, len(observed)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
			},
		}),
	)
	labels := make([]string, len(observed))
	obs := make([]opts.BarData, len(observed))
	exp := make([]opts.BarData, len(observed))
	for i := range observed {
		labels[i] = fmt.Sprintf("%d", i)
		obs[i] = opts.BarData{Value: observed[i]}
		exp[i] = opts.BarData{Value: expected[i]}
	}
	bar.SetXAxis(labels).
		AddSeries("observed", obs).
		AddSeries("expected", exp)
	page.AddCharts(bar)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
