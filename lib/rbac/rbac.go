package rbac

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"hiring-hare-backend/models"
)

type Provider interface {
	// RequiredPermission resolves which catalog permission gates an HTTP
	// route. Routes without a rule are open to any authenticated user.
	RequiredPermission(method, path string) (permission string, found bool)
	Guard() *Guard
	Catalog() *Catalog
}

var Instance Provider

func NewHandler() {
	catalog, err := NewCatalog(models.PermissionCatalog(), models.RoleGrants())
	if err != nil {
		panic(err.Error())
	}
	i := &impl{
		catalog: catalog,
		guard:   NewGuard(catalog),
		rules:   map[httpMethod]*pathRule{},
	}
	i.initRules()
	Instance = i
}

type httpMethod string

type pathRule struct {
	// exact matches checked before regexp rules
	exact    map[string]string
	patterns []patternRule
}

type patternRule struct {
	pattern    *regexp.Regexp
	permission string
}

type impl struct {
	catalog *Catalog
	guard   *Guard
	rules   map[httpMethod]*pathRule
}

func (i *impl) Guard() *Guard {
	return i.guard
}

func (i *impl) Catalog() *Catalog {
	return i.catalog
}

func (i *impl) RequiredPermission(method, path string) (string, bool) {
	normalizedPath := normalizePath(path)
	httpMethod := httpMethod(strings.ToUpper(method))

	pathRule, exists := i.rules[httpMethod]
	if !exists {
		return "", false
	}
	if permission, ok := pathRule.exact[normalizedPath]; ok {
		return permission, true
	}
	for _, rule := range pathRule.patterns {
		if rule.pattern.MatchString(normalizedPath) {
			return rule.permission, true
		}
	}
	return "", false
}

// registerRule binds a route in swagger annotation form
// ("/api/v1/requirement/{id} [post]") to a required permission.
func (i *impl) registerRule(permission, swaggerPattern string) {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		panic(err.Error())
	}
	if _, ok := i.catalog.permissions[permission]; !ok {
		panic(errors.Errorf("route %v requires unknown permission %q", swaggerPattern, permission).Error())
	}

	if _, exists := i.rules[method]; !exists {
		i.rules[method] = &pathRule{
			exact:    make(map[string]string),
			patterns: []patternRule{},
		}
	}
	rule := i.rules[method]
	if !strings.Contains(path, "{") {
		rule.exact[path] = permission
		return
	}
	pattern := pathToRegex(path)
	if pattern == nil {
		rule.exact[path] = permission
		return
	}
	rule.patterns = append(rule.patterns, patternRule{
		pattern:    pattern,
		permission: permission,
	})
}

func pathToRegex(path string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(path)

	pattern = strings.ReplaceAll(pattern, "\\{", "{")
	pattern = strings.ReplaceAll(pattern, "\\}", "}")

	pattern = regexp.MustCompile(`\{[^}]+?\}`).ReplaceAllString(pattern, `([^/]+)`)
	pattern = "^" + pattern + "$"

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return regex
}

// parses a swagger route annotation like "/api/v1/users [post]"
func parseSwaggerPattern(pattern string) (path string, method httpMethod, err error) {
	pattern = strings.TrimSpace(pattern)

	bracketStart := strings.LastIndex(pattern, "[")
	bracketEnd := strings.LastIndex(pattern, "]")

	if bracketStart == -1 || bracketEnd == -1 || bracketEnd < bracketStart {
		return "", "", errors.Errorf("method not provided for pattern (%v)", pattern)
	}
	path = strings.TrimSpace(pattern[:bracketStart])
	method = httpMethod(strings.ToUpper(strings.TrimSpace(pattern[bracketStart+1 : bracketEnd])))
	path = normalizePath(path)
	return path, method, nil
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}
