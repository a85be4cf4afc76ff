package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codewandler/jni-go/adapters/prometheus"
	"github.com/codewandler/jni-go/core/jvm"
	"github.com/codewandler/jni-go/core/resolver"
	"github.com/codewandler/jni-go/core/signature"
)

// === Config ===

var (
	logLevel    = slog.LevelInfo
	workers     = getEnvInt("W", 8)
	rounds      = getEnvInt("N", 100_000)
	classCount  = getEnvInt("CLASSES", 16)
	memberCount = getEnvInt("MEMBERS", 64)
	noCache     = getEnvBool("NO_CACHE", false)
	dedup       = getEnvBool("DEDUP", false)
	metricsAddr = getEnv("METRICS_ADDR", "")
)

func getEnvBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	return v == "1" || v == "true"
}

func getEnv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, fmt.Sprintf("%d", fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	opts := []resolver.Option{resolver.WithLog(log)}
	if noCache {
		opts = append(opts, resolver.WithoutCache())
	}

	if metricsAddr != "" {
		reg := promclient.NewRegistry()
		opts = append(opts, resolver.WithMetrics(prometheus.NewResolverMetrics(reg)))

		go func() {
			log.Info("serving metrics", slog.String("addr", metricsAddr))
			http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(metricsAddr, nil); err != nil {
				log.Error("metrics server", slog.Any("error", err))
			}
		}()
	}

	// === fake VM ===

	memEnv := jvm.NewInMemoryEnv()
	args := []signature.Descriptor{signature.Int}

	classes := make([]jvm.Ref, classCount)
	sites := make([]*resolver.MethodSite, memberCount)
	for i := range sites {
		sites[i] = resolver.NewMethodSite(fmt.Sprintf("method%d", i), false, args, signature.Long)
	}
	for c := range classes {
		classes[c] = memEnv.DefineClass(fmt.Sprintf("com/example/Class%d", c))
		for i := range sites {
			memEnv.DefineMethod(classes[c], sites[i].Name().String(), sites[i].Descriptor())
		}
	}

	var env jvm.Env = memEnv
	if dedup {
		env = jvm.NewDedupEnv(memEnv)
	}

	r := resolver.New(opts...)

	log.Info("starting",
		slog.Int("workers", workers),
		slog.Int("rounds", rounds),
		slog.Int("classes", classCount),
		slog.Int("members", memberCount),
		slog.Bool("no_cache", noCache),
	)

	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				class := classes[(w+i)%classCount]
				site := sites[i%memberCount]
				if _, err := site.Resolve(r, env, class); err != nil {
					log.Error("resolve", slog.Any("error", err))
					return
				}
			}
		}(w)
	}
	wg.Wait()

	elapsed := time.Since(start)
	total := workers * rounds

	log.Info("done",
		slog.Int("resolutions", total),
		slog.Duration("elapsed", elapsed),
		slog.Float64("per_second", float64(total)/elapsed.Seconds()),
		slog.Uint64("vm_lookups", memEnv.Lookups()),
		slog.Int("slots", r.Slots()),
	)
}
