package injuries

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultSourceURL is the CBS Sports league-wide injury report.
	DefaultSourceURL = "https://www.cbssports.com/nba/injuries/"

	sourceName         = "CBS Sports"
	lastUpdatedLayout  = "January 02, 2006 15:04 UTC"
	defaultHTTPTimeout = 20 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Scraper fetches and parses the injury report page.
type Scraper struct {
	url        string
	httpClient httpDoer
	now        func() time.Time
}

// NewScraper constructs a scraper for the given URL; empty selects the
// default source.
func NewScraper(url string, client *http.Client) *Scraper {
	if url == "" {
		url = DefaultSourceURL
	}
	doer := httpDoer(client)
	if client == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Scraper{url: url, httpClient: doer, now: time.Now}
}

// Scrape fetches the page and parses it into a Report.
func (s *Scraper) Scrape(ctx context.Context) (*Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("injuries: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("injuries: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("injuries: parse: %w", err)
	}
	return s.parse(doc), nil
}

// parse walks the per-team tables. Each team section holds a logo/name
// lockup followed by one table row per injured player.
func (s *Scraper) parse(doc *goquery.Document) *Report {
	report := &Report{
		Injuries:    []TeamReport{},
		Source:      sourceName,
		LastUpdated: s.now().UTC().Format(lastUpdatedLayout),
	}

	doc.Find("div.TableBaseWrapper").Each(func(_ int, section *goquery.Selection) {
		team := TeamReport{
			Team:    clean(section.Find(".TeamLogoNameLockup-name").First().Text()),
			Players: []PlayerInjury{},
		}
		if team.Team == "" {
			return
		}

		section.Find("tr.TableBase-bodyTr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			player := PlayerInjury{
				Name:    clean(row.Find("span.CellPlayerName--long").First().Text()),
				Updated: clean(row.Find("span.CellGameDate").First().Text()),
				Injury:  clean(cells.Eq(3).Text()),
				Status:  clean(cells.Eq(4).Text()),
			}
			if player.Name == "" {
				return
			}
			team.Players = append(team.Players, player)
		})

		if len(team.Players) > 0 {
			report.Injuries = append(report.Injuries, team)
		}
	})

	return report
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
