package e2e

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"htmx-tictactoe/events"
	"htmx-tictactoe/game"
	"htmx-tictactoe/handlers"

	"github.com/gin-gonic/gin"
	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.NewHandler(logger, game.NewStore(), events.NewHub(), "ttt_session", 3600)
	return handlers.NewRouter(logger, h)
}

// startBrowser launches headless Chromium and a test server. The test is
// skipped when no Playwright driver is installed.
func startBrowser(t *testing.T) (playwright.Browser, *httptest.Server) {
	t.Helper()

	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright not available: %v", err)
	}
	t.Cleanup(func() { pw.Stop() })

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	require.NoError(t, err)
	t.Cleanup(func() { browser.Close() })

	server := httptest.NewServer(setupRouter())
	t.Cleanup(server.Close)

	return browser, server
}

func newPage(t *testing.T, browser playwright.Browser, url string) playwright.Page {
	t.Helper()

	context, err := browser.NewContext()
	require.NoError(t, err)
	t.Cleanup(func() { context.Close() })

	page, err := context.NewPage()
	require.NoError(t, err)

	_, err = page.Goto(url)
	require.NoError(t, err)

	err = page.Locator(".square").First().WaitFor()
	require.NoError(t, err)

	return page
}

func cell(page playwright.Page, index int) playwright.Locator {
	return page.Locator(".square").Nth(index)
}

// play clicks a cell and waits until it shows symbol.
func play(t *testing.T, page playwright.Page, index int, symbol string) {
	t.Helper()

	err := cell(page, index).Click()
	require.NoError(t, err)

	_, err = page.WaitForFunction(`([i, s]) => document.querySelectorAll('.square')[i].textContent === s`,
		[]interface{}{index, symbol})
	require.NoError(t, err)
}

func statusText(t *testing.T, page playwright.Page) string {
	t.Helper()
	text, err := page.Locator(".status").TextContent()
	require.NoError(t, err)
	return text
}
