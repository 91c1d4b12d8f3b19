/*
Package observability exports symdq engine activity as Prometheus metrics.

Metrics owns a private registry so several engines (or tests) never collide
on the global one. Wire it through the engine hooks:

	m := observability.NewMetrics()
	eng, _ := symdq.New(symdq.WithHooks(m.Hooks()))
	http.Handle("/metrics", m.Handler())
*/
package observability
