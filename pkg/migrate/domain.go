package migrate

// DomainUnknown is assigned to skills that have no entry in the domain
// map. It is a warning condition, not a failure; migration proceeds.
const DomainUnknown = "unknown"

// DomainMap assigns each skill a coarse category used for the
// metadata.domain field. It is read-only for the lifetime of a run.
type DomainMap map[string]string

// Classify returns the domain for a skill, or DomainUnknown when the
// skill has no mapping.
func (m DomainMap) Classify(skill string) string {
	if domain, ok := m[skill]; ok {
		return domain
	}
	return DomainUnknown
}

// DefaultDomains returns the skill-to-domain table derived from
// SKILLS_GUIDE.md. Callers get a fresh copy so the shared table can
// never be mutated between runs.
func DefaultDomains() DomainMap {
	return DomainMap{
		// language
		"python-pro":        "language",
		"typescript-pro":    "language",
		"javascript-pro":    "language",
		"golang-pro":        "language",
		"rust-engineer":     "language",
		"sql-pro":           "language",
		"cpp-pro":           "language",
		"swift-expert":      "language",
		"kotlin-specialist": "language",
		"csharp-developer":  "language",
		"php-pro":           "language",
		"java-architect":    "language",
		// backend
		"nestjs-expert":        "backend",
		"django-expert":        "backend",
		"fastapi-expert":       "backend",
		"spring-boot-engineer": "backend",
		"laravel-specialist":   "backend",
		"rails-expert":         "backend",
		"dotnet-core-expert":   "backend",
		// frontend
		"react-expert":        "frontend",
		"nextjs-developer":    "frontend",
		"vue-expert":          "frontend",
		"vue-expert-js":       "frontend",
		"angular-architect":   "frontend",
		"react-native-expert": "frontend",
		"flutter-expert":      "frontend",
		// infrastructure
		"kubernetes-specialist": "infrastructure",
		"terraform-engineer":    "infrastructure",
		"postgres-pro":          "infrastructure",
		"cloud-architect":       "infrastructure",
		"database-optimizer":    "infrastructure",
		// api-architecture
		"graphql-architect":       "api-architecture",
		"api-designer":            "api-architecture",
		"websocket-engineer":      "api-architecture",
		"microservices-architect": "api-architecture",
		"mcp-developer":           "api-architecture",
		"architecture-designer":   "api-architecture",
		// quality
		"test-master":       "quality",
		"playwright-expert": "quality",
		"code-reviewer":     "quality",
		"code-documenter":   "quality",
		"debugging-wizard":  "quality",
		// devops
		"devops-engineer":   "devops",
		"monitoring-expert": "devops",
		"sre-engineer":      "devops",
		"chaos-engineer":    "devops",
		"cli-developer":     "devops",
		// security
		"secure-code-guardian": "security",
		"security-reviewer":    "security",
		"fullstack-guardian":   "security",
		// data-ml
		"pandas-pro":         "data-ml",
		"spark-engineer":     "data-ml",
		"ml-pipeline":        "data-ml",
		"prompt-engineer":    "data-ml",
		"rag-architect":      "data-ml",
		"fine-tuning-expert": "data-ml",
		// platform
		"salesforce-developer": "platform",
		"shopify-expert":       "platform",
		"wordpress-pro":        "platform",
		"atlassian-mcp":        "platform",
		// specialized
		"legacy-modernizer": "specialized",
		"embedded-systems":  "specialized",
		"game-developer":    "specialized",
		// workflow
		"feature-forge": "workflow",
		"spec-miner":    "workflow",
	}
}
