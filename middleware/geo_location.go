package middleware

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// contextCoordsKey is where resolved client coordinates live in the Gin
// context. Absence means the position is unknown; handlers must degrade
// rather than fail.
const contextCoordsKey = "clientCoords"

// ipGeoResult is the subset of the ipapi.co response we use.
type ipGeoResult struct {
	IP        string  `json:"ip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// geoCache caches IP lookups so repeated requests skip the external call.
var (
	geoCache   = make(map[string]*utils.Coordinates)
	cacheMutex sync.RWMutex
)

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	if parsedIP.IsLoopback() {
		return true
	}
	privateIPBlocks := []*net.IPNet{
		{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
		{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
		{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
	}
	for _, block := range privateIPBlocks {
		if block.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// lookupIPCoordinates resolves an IP to coordinates via ipapi.co, caching
// results. Private IPs and failed lookups yield nil.
func lookupIPCoordinates(ip string, logger *zap.Logger) *utils.Coordinates {
	cacheMutex.RLock()
	if coords, exists := geoCache[ip]; exists {
		cacheMutex.RUnlock()
		return coords
	}
	cacheMutex.RUnlock()

	if isPrivateIP(ip) {
		return nil
	}

	client := http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(fmt.Sprintf("https://ipapi.co/%s/json/", ip))
	if err != nil {
		logger.Warn("IP geolocation lookup failed", zap.String("ip", ip), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("IP geolocation lookup returned non-OK status",
			zap.String("ip", ip), zap.Int("status", resp.StatusCode))
		return nil
	}

	var result ipGeoResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Warn("Failed to decode IP geolocation response", zap.String("ip", ip), zap.Error(err))
		return nil
	}

	coords := &utils.Coordinates{Latitude: result.Latitude, Longitude: result.Longitude}
	cacheMutex.Lock()
	geoCache[ip] = coords
	cacheMutex.Unlock()
	return coords
}

// parseCoordinatePair returns coordinates only when both values parse as
// floats within valid ranges. A malformed pair counts as absent.
func parseCoordinatePair(latStr, lngStr string) *utils.Coordinates {
	if latStr == "" || lngStr == "" {
		return nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil || lng < -180 || lng > 180 {
		return nil
	}
	return &utils.Coordinates{Latitude: lat, Longitude: lng}
}

// ClientCoordinatesMiddleware resolves the client position from explicit
// headers or query parameters, falling back to an IP lookup. The request
// always proceeds; distance features are simply disabled when no position
// can be resolved.
func ClientCoordinatesMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		coords := parseCoordinatePair(
			c.GetHeader("X-Client-Latitude"),
			c.GetHeader("X-Client-Longitude"),
		)
		if coords == nil {
			coords = parseCoordinatePair(c.Query("lat"), c.Query("lng"))
		}
		if coords == nil {
			coords = lookupIPCoordinates(getClientIP(c), utils.GetLogger())
		}

		if coords != nil {
			c.Set(contextCoordsKey, coords)
		}
		c.Next()
	}
}

// CoordinatesFromContext extracts the resolved client position, or nil when
// unknown.
func CoordinatesFromContext(c *gin.Context) *utils.Coordinates {
	value, exists := c.Get(contextCoordsKey)
	if !exists {
		return nil
	}
	coords, ok := value.(*utils.Coordinates)
	if !ok {
		return nil
	}
	return coords
}
