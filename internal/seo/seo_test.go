package seo

import (
	"bytes"
	"encoding/xml"
	"strings"
	"sync"
	"testing"
	"time"
)

const wantDefaultRobots = `User-agent: *
Allow: /

Disallow: /admin/
Disallow: /api/
Disallow: /_next/
Disallow: /static/

Allow: /blog
Allow: /digital-forensic
Allow: /press
Allow: /training
Allow: /contact
Allow: /about

Sitemap: https://yhdfc.com/sitemap.xml
Crawl-delay: 1`

func TestRobots_ExactBody(t *testing.T) {
	if got := Robots("https://yhdfc.com"); got != wantDefaultRobots {
		t.Errorf("body mismatch\n got: %q\nwant: %q", got, wantDefaultRobots)
	}
}

func sitemapLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "Sitemap:") {
			return line
		}
	}
	return ""
}

func TestRobots_SitemapLine(t *testing.T) {
	bases := []string{
		"https://yhdfc.com",
		"http://localhost:3000",
		"https://staging.example.org",
		"https://example.org/sub",
	}
	for _, base := range bases {
		t.Run(base, func(t *testing.T) {
			want := "Sitemap: " + base + "/sitemap.xml"
			if got := sitemapLine(Robots(base)); got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestRobots_NoDoubleSlash(t *testing.T) {
	got := sitemapLine(Robots("https://yhdfc.com/"))
	if got != "Sitemap: https://yhdfc.com/sitemap.xml" {
		t.Errorf("got %q", got)
	}
}

func TestRobots_DirectiveSets(t *testing.T) {
	body := Robots("https://example.org")

	var disallow, allow []string
	for _, line := range strings.Split(body, "\n") {
		switch {
		case strings.HasPrefix(line, "Disallow: "):
			disallow = append(disallow, strings.TrimPrefix(line, "Disallow: "))
		case strings.HasPrefix(line, "Allow: "):
			if p := strings.TrimPrefix(line, "Allow: "); p != "/" {
				allow = append(allow, p)
			}
		}
	}

	wantDisallow := []string{"/admin/", "/api/", "/_next/", "/static/"}
	wantAllow := []string{"/blog", "/digital-forensic", "/press", "/training", "/contact", "/about"}

	if strings.Join(disallow, ",") != strings.Join(wantDisallow, ",") {
		t.Errorf("disallow = %v, want %v", disallow, wantDisallow)
	}
	if strings.Join(allow, ",") != strings.Join(wantAllow, ",") {
		t.Errorf("allow = %v, want %v", allow, wantAllow)
	}
}

func TestRobots_ConcurrentIdentical(t *testing.T) {
	const n = 32
	bodies := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bodies[i] = Robots("https://yhdfc.com")
		}(i)
	}
	wg.Wait()

	for i, b := range bodies {
		if b != bodies[0] {
			t.Fatalf("body %d differs from body 0", i)
		}
	}
}

func TestWriteSitemap(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("KST", 9*3600))

	var buf bytes.Buffer
	if err := WriteSitemap(&buf, "https://yhdfc.com/", now); err != nil {
		t.Fatalf("WriteSitemap: %v", err)
	}

	if !strings.HasPrefix(buf.String(), xml.Header) {
		t.Error("sitemap should start with the XML declaration")
	}

	var set urlSet
	if err := xml.Unmarshal(buf.Bytes(), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(buf.String(), `<urlset xmlns="`+sitemapNS+`">`) {
		t.Error("urlset should declare the sitemap namespace")
	}
	if len(set.URLs) != len(StaticPages) {
		t.Fatalf("urls = %d, want %d", len(set.URLs), len(StaticPages))
	}

	home := set.URLs[0]
	if home.Loc != "https://yhdfc.com" {
		t.Errorf("home loc = %q", home.Loc)
	}
	if home.LastMod != "2026-03-01T03:00:00Z" {
		t.Errorf("home lastmod = %q", home.LastMod)
	}
	if home.Priority != "1.0" || home.ChangeFreq != "daily" {
		t.Errorf("home = %+v", home)
	}

	for _, u := range set.URLs {
		if u.LastMod != home.LastMod {
			t.Errorf("%s lastmod = %q, want %q", u.Loc, u.LastMod, home.LastMod)
		}
		if strings.Contains(u.Loc, "/blog/") {
			t.Errorf("unserved blog post listed: %s", u.Loc)
		}
	}
}
