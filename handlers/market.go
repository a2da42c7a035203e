package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const (
	quoteCacheTTL   = 5 * time.Minute
	historyCacheTTL = 24 * time.Hour
)

type AlphaVantageResponse struct {
	GlobalQuote struct {
		Price string `json:"05. price"`
	} `json:"Global Quote"`
	TimeSeriesDaily map[string]struct {
		Open   string `json:"1. open"`
		High   string `json:"2. high"`
		Low    string `json:"3. low"`
		Close  string `json:"4. close"`
		Volume string `json:"5. volume"`
	} `json:"Time Series (Daily)"`
}

type PricePoint struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Date   string  `json:"date"`
}

// Market serves live quotes for favorite stocks, cached in Redis when a
// client is configured. Rdb may be nil, in which case every request
// goes straight to the upstream API.
type Market struct {
	Rdb     *redis.Client
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewMarket(rdb *redis.Client, apiKey string) *Market {
	return &Market{
		Rdb:     rdb,
		APIKey:  apiKey,
		BaseURL: "https://www.alphavantage.co",
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *Market) GetQuote(c *gin.Context) {
	symbol := c.Param("symbol")
	cacheKey := fmt.Sprintf("stock:%s:price", symbol)

	if h.Rdb != nil {
		if cached, err := h.Rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			c.JSON(http.StatusOK, gin.H{"symbol": symbol, "price": cached, "cached": true})
			return
		}
	}

	url := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s", h.BaseURL, symbol, h.APIKey)
	resp, err := h.Client.Get(url)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch stock data"})
		return
	}
	defer resp.Body.Close()

	var result AlphaVantageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse stock data"})
		return
	}

	if result.GlobalQuote.Price == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
		return
	}

	if h.Rdb != nil {
		// Cache failures degrade to fetch-through, they never fail the request.
		h.Rdb.Set(c.Request.Context(), cacheKey, result.GlobalQuote.Price, quoteCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{"symbol": symbol, "price": result.GlobalQuote.Price})
}

func (h *Market) GetHistory(c *gin.Context) {
	symbol := c.Param("symbol")
	cacheKey := fmt.Sprintf("stock:%s:history", symbol)

	if h.Rdb != nil {
		if cached, err := h.Rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var points []PricePoint
			if json.Unmarshal([]byte(cached), &points) == nil {
				c.JSON(http.StatusOK, points)
				return
			}
		}
	}

	url := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&symbol=%s&apikey=%s", h.BaseURL, symbol, h.APIKey)
	resp, err := h.Client.Get(url)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch historical data"})
		return
	}
	defer resp.Body.Close()

	var result AlphaVantageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse historical data"})
		return
	}

	if len(result.TimeSeriesDaily) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Historical data not found"})
		return
	}

	points := make([]PricePoint, 0, len(result.TimeSeriesDaily))
	for date, data := range result.TimeSeriesDaily {
		closePrice, err := strconv.ParseFloat(data.Close, 64)
		if err != nil {
			continue
		}
		points = append(points, PricePoint{Symbol: symbol, Price: closePrice, Date: date})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	if h.Rdb != nil {
		if data, err := json.Marshal(points); err == nil {
			h.Rdb.Set(c.Request.Context(), cacheKey, data, historyCacheTTL)
		}
	}

	c.JSON(http.StatusOK, points)
}
