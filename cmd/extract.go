package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/tariktz/linkxtract"
	"github.com/tariktz/linkxtract/internal/config"
	"github.com/tariktz/linkxtract/internal/fetch"
)

type extractOptions struct {
	allow          []string
	deny           []string
	allowDomains   []string
	denyDomains    []string
	restrictXPaths []string
	restrictCSS    []string
	restrictText   []string
	tags           []string
	attrs          []string
	denyExtensions []string
	canonicalize   bool
	noUnique       bool
	userAgent      string
	timeout        time.Duration
	robots         bool
	skip           []string
}

func init() {
	opts := &extractOptions{}

	extractCmd := &cobra.Command{
		Use:   "extract <url>",
		Short: "Fetch a page and print the hyperlinks it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL := strings.TrimSpace(args[0])

			cfgOpts := []config.Option{
				config.WithAllow(opts.allow...),
				config.WithDeny(opts.deny...),
				config.WithAllowDomains(opts.allowDomains...),
				config.WithDenyDomains(opts.denyDomains...),
				config.WithRestrictXPaths(opts.restrictXPaths...),
				config.WithRestrictCSS(opts.restrictCSS...),
				config.WithRestrictText(opts.restrictText...),
				config.WithCanonicalize(opts.canonicalize),
				config.WithUnique(!opts.noUnique),
			}
			if len(opts.tags) > 0 {
				cfgOpts = append(cfgOpts, config.WithTags(opts.tags...))
			}
			if len(opts.attrs) > 0 {
				cfgOpts = append(cfgOpts, config.WithAttrs(opts.attrs...))
			}
			if len(opts.denyExtensions) > 0 {
				cfgOpts = append(cfgOpts, config.WithDenyExtensions(opts.denyExtensions...))
			}

			cfg, err := config.New(cfgOpts...)
			if err != nil {
				return err
			}

			extractor, err := linkxtract.NewExtractor(cfg)
			if err != nil {
				return err
			}

			page, err := fetch.Fetch(rawURL, fetch.Options{
				UserAgent:        opts.userAgent,
				Timeout:          opts.timeout,
				RespectRobotsTxt: opts.robots,
			})
			if err != nil {
				return err
			}

			links := extractor.ExtractLinks(linkxtract.Response{
				URL:      page.URL,
				Body:     page.Body,
				Encoding: page.Encoding,
				IsXML:    page.IsXML,
			})
			links, err = skipGlobs(links, opts.skip)
			if err != nil {
				return err
			}

			for _, l := range links {
				line := l.URL
				if l.Fragment != "" {
					line += "#" + l.Fragment
				}
				if l.Nofollow {
					line += " [nofollow]"
				}
				fmt.Println(line)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d link(s) extracted from %s\n", len(links), page.URL)

			return nil
		},
	}

	extractCmd.Flags().StringSliceVar(&opts.allow, "allow", nil, "Regex an extracted URL must match (repeatable)")
	extractCmd.Flags().StringSliceVar(&opts.deny, "deny", nil, "Regex that excludes a matching URL (repeatable)")
	extractCmd.Flags().StringSliceVar(&opts.allowDomains, "allow-domains", nil, "Domain an extracted URL must belong to (repeatable)")
	extractCmd.Flags().StringSliceVar(&opts.denyDomains, "deny-domains", nil, "Domain that excludes a matching URL (repeatable)")
	extractCmd.Flags().StringSliceVar(&opts.restrictXPaths, "restrict-xpaths", nil, "XPath expression narrowing which regions are walked (repeatable)")
	extractCmd.Flags().StringSliceVar(&opts.restrictCSS, "restrict-css", nil, "CSS selector narrowing which regions are walked (repeatable)")
	extractCmd.Flags().StringSliceVar(&opts.restrictText, "restrict-text", nil, "Regex an anchor's text must match (repeatable)")
	extractCmd.Flags().StringSliceVar(&opts.tags, "tags", nil, "Tag names to extract from (default a, area)")
	extractCmd.Flags().StringSliceVar(&opts.attrs, "attrs", nil, "Attribute names to extract (default href)")
	extractCmd.Flags().StringSliceVar(&opts.denyExtensions, "deny-extensions", nil, "Extensions to exclude, overriding the built-in list")
	extractCmd.Flags().BoolVar(&opts.canonicalize, "canonicalize", false, "Sort query parameters and drop fragments before comparing URLs")
	extractCmd.Flags().BoolVar(&opts.noUnique, "no-unique", false, "Keep duplicate URLs instead of deduplicating")
	extractCmd.Flags().StringVar(&opts.userAgent, "user-agent", "", "User-Agent header sent when fetching the page")
	extractCmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Timeout for the page fetch")
	extractCmd.Flags().BoolVar(&opts.robots, "respect-robots", false, "Honor robots.txt before fetching")
	extractCmd.Flags().StringSliceVar(&opts.skip, "skip", nil, "Glob pattern to drop from the printed results (repeatable)")

	rootCmd.AddCommand(extractCmd)
}

// skipGlobs is a CLI-only post-filter on top of the extractor's own
// allow/deny rules, mirroring the teacher's --exclude glob flag in
// cmd/crawl.go but compiled with gobwas/glob instead of path.Match.
func skipGlobs(links []linkxtract.Link, patterns []string) ([]linkxtract.Link, error) {
	if len(patterns) == 0 {
		return links, nil
	}

	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile --skip pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}

	out := make([]linkxtract.Link, 0, len(links))
	for _, l := range links {
		skip := false
		for _, g := range compiled {
			if g.Match(l.URL) {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, l)
		}
	}
	return out, nil
}
