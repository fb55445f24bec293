// Package teamnames resolves team codes to franchise display names by
// scraping the pro-football-reference teams index. Display-only; everything
// in the engine keys on the feed's team codes.
package teamnames

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const teamsURL = "https://www.pro-football-reference.com/teams/"

var httpCli = &http.Client{Timeout: 30 * time.Second}
var ua = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119 Safari/537.36 (+stats-research)"

// PFR URL path segment → feed abbr.
var pathAbbr = map[string]string{
	"crd": "ARI", "atl": "ATL", "rav": "BAL", "buf": "BUF",
	"car": "CAR", "chi": "CHI", "cin": "CIN", "cle": "CLE",
	"dal": "DAL", "den": "DEN", "det": "DET", "gnb": "GB",
	"htx": "HOU", "clt": "IND", "jax": "JAX", "kan": "KC",
	"rai": "LV", "sdg": "LAC", "ram": "LA", "mia": "MIA",
	"min": "MIN", "nwe": "NE", "nor": "NO", "nyg": "NYG",
	"nyj": "NYJ", "phi": "PHI", "pit": "PIT", "sfo": "SF",
	"sea": "SEA", "tam": "TB", "oti": "TEN", "was": "WAS",
}

// Fetch scrapes the active-franchise table and returns abbr → display name.
func Fetch(ctx context.Context) (map[string]string, error) {
	html, err := getTextWithRetry(ctx, teamsURL)
	if err != nil {
		return nil, fmt.Errorf("fetch teams page: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse teams page: %w", err)
	}
	return parseTeams(doc), nil
}

func parseTeams(doc *goquery.Document) map[string]string {
	names := make(map[string]string)
	doc.Find(`table#teams_active tbody tr th[data-stat="team_name"] a`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href") // "/teams/crd/"
		parts := strings.Split(strings.Trim(href, "/"), "/")
		if len(parts) != 2 || parts[0] != "teams" {
			return
		}
		abbr, ok := pathAbbr[parts[1]]
		if !ok {
			return
		}
		name := strings.TrimSpace(a.Text())
		if name != "" {
			names[abbr] = name
		}
	})
	return names
}

// fetch with UA, retries on 429/5xx with backoff
func getTextWithRetry(ctx context.Context, url string) (string, error) {
	maxAttempts := 4
	backoff := 250 * time.Millisecond
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		req, _ := http.NewRequestWithContext(ctx, "GET", url, nil)
		req.Header.Set("User-Agent", ua)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		resp, err := httpCli.Do(req)
		if err != nil {
			lastErr = err
		} else {
			b, rerr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if rerr == nil && resp.StatusCode == 200 {
				return string(b), nil
			}
			if rerr != nil {
				lastErr = rerr
			} else {
				lastErr = fmt.Errorf("status %d for %s", resp.StatusCode, url)
			}
			if resp.StatusCode != 429 && resp.StatusCode < 500 {
				return "", lastErr
			}
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return "", lastErr
}
