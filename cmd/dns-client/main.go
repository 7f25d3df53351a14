// SPDX-License-Identifier: GPL-3.0-or-later

// Command dns-client resolves a domain name against a DNS server
// over UDP and prints the answers.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bassosimone/minidns"
	"go.uber.org/zap"
)

// publicResolvers are the servers queried by -compare-public.
var publicResolvers = []struct {
	name string
	addr string
}{
	{"Google", "8.8.8.8:53"},
	{"Cloudflare", "1.1.1.1:53"},
	{"Quad9", "9.9.9.9:53"},
}

// comparePublicTimeout bounds each comparison query.
const comparePublicTimeout = 3 * time.Second

func main() {
	server := flag.String("server", "127.0.0.1:5353", "DNS server to query (host:port)")
	qtypeName := flag.String("type", "A", "record type: A, NS, CNAME, PTR, MX or AAAA")
	timeoutMs := flag.Int("timeout", 5000, "query timeout in milliseconds")
	verbose := flag.Bool("verbose", false, "log per-step details")
	comparePublic := flag.Bool("compare-public", false, "also ask a few public resolvers")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <domain>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	domain := flag.Arg(0)

	logger := newLogger(*verbose)
	defer logger.Sync()

	qtype, err := minidns.ParseRecordType(*qtypeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	client, err := minidns.NewClient(logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer client.Close()

	timeout := time.Duration(*timeoutMs) * time.Millisecond
	resp, elapsed, err := client.Query(domain, *server, qtype, timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query failed: %s\n", err)
		os.Exit(1)
	}

	displayResults(domain, resp, elapsed)

	if *comparePublic {
		compareWithPublicDNS(client, domain, qtype)
	}
}

// displayResults prints the outcome of the main query.
func displayResults(domain string, resp *minidns.Message, elapsed time.Duration) {
	fmt.Printf("domain: %s\n", domain)
	fmt.Printf("status: %s\n", minidns.RcodeText(resp.Header.Rcode))
	fmt.Printf("time: %.2fms\n", elapsed.Seconds()*1000)
	if len(resp.Answers) == 0 {
		fmt.Printf("no answers\n")
		return
	}
	fmt.Printf("answers:\n")
	for i := range resp.Answers {
		answer := &resp.Answers[i]
		if addr, ok := answer.IPv4(); ok {
			fmt.Printf("  %d. %s -> %s (TTL: %ds)\n", i+1, answer.Name, addr, answer.TTL)
		} else {
			fmt.Printf("  %d. %s -> [%d bytes of data]\n", i+1, answer.Name, len(answer.Data))
		}
	}
}

// compareWithPublicDNS asks well known public resolvers the same
// question and prints the first address from each.
func compareWithPublicDNS(client *minidns.Client, domain string, qtype minidns.RecordType) {
	fmt.Printf("\npublic resolvers:\n")
	for _, resolver := range publicResolvers {
		resp, elapsed, err := client.Query(domain, resolver.addr, qtype, comparePublicTimeout)
		if err != nil {
			fmt.Printf("  %s (%s): %s\n", resolver.name, resolver.addr, err)
			continue
		}
		fmt.Printf("  %s (%s): %s in %.2fms\n",
			resolver.name, resolver.addr, firstAnswer(resp), elapsed.Seconds()*1000)
	}
}

// firstAnswer summarizes a comparison reply: the first address, a
// note for non-address data, or the absence of an answer.
func firstAnswer(resp *minidns.Message) string {
	if resp.Header.Rcode != minidns.RcodeNoError || len(resp.Answers) == 0 {
		return "no answer"
	}
	if addr, ok := resp.Answers[0].IPv4(); ok {
		return addr.String()
	}
	return "binary data"
}

// newLogger builds a console logger: Info level by default, Debug
// when verbose.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zap.Must(cfg.Build())
}
