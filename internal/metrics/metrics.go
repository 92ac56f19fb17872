package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
	Add(value float64, labels ...string)
}

type Counters struct {
	FilesFetched     Counter
	FilesParsed      Counter
	SessionsIngested Counter
	EntriesIngested  Counter

	HTTPRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounter(name, help string, labels []string) *PrometheusCounter {
	return &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loglens",
			Name:      name,
			Help:      help,
		}, labels),
	}
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func (p *PrometheusCounter) Add(value float64, labels ...string) {
	p.counter.WithLabelValues(labels...).Add(value)
}

func newCounters() (*Counters, []prometheus.Collector) {
	filesFetched := newCounter("files_fetched_total", "Log files fetched from sources", []string{"status"})
	filesParsed := newCounter("files_parsed_total", "Log files parsed", []string{"status"})
	sessionsIngested := newCounter("sessions_ingested_total", "Test sessions processed by ingestion", []string{"status"})
	entriesIngested := newCounter("entries_ingested_total", "Log entries stored", nil)
	httpRequests := newCounter("http_requests_total", "HTTP API requests", []string{"route", "status"})

	c := &Counters{
		FilesFetched:     filesFetched,
		FilesParsed:      filesParsed,
		SessionsIngested: sessionsIngested,
		EntriesIngested:  entriesIngested,
		HTTPRequests:     httpRequests,
	}
	collectors := []prometheus.Collector{
		filesFetched.counter,
		filesParsed.counter,
		sessionsIngested.counter,
		entriesIngested.counter,
		httpRequests.counter,
	}
	return c, collectors
}

// New registers the counters with the default registry served on /metrics.
func New() *Counters {
	c, collectors := newCounters()
	prometheus.MustRegister(collectors...)
	return c
}

// NewTestCounters registers the counters with a private registry, so tests
// can build as many as they need.
func NewTestCounters() *Counters {
	c, collectors := newCounters()
	prometheus.NewRegistry().MustRegister(collectors...)
	return c
}
