package vault

// SeedRecords is the built-in resource collection hydrated at startup.
// Session-local additions layer on top of it at runtime.
func SeedRecords() []ResourceRecord {
	return []ResourceRecord{
		{
			ID:          "junit5-user-guide",
			Title:       "JUnit 5 User Guide",
			Description: "The official reference for writing and running JUnit Jupiter tests.",
			URL:         "https://junit.org/junit5/docs/current/user-guide/",
			Type:        TypeDocumentation,
			Difficulty:  Intermediate,
			Freshness:   ActivelyMaintained,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "JUnit Team",
			Categories:  []Category{CategoryJava},
			Concepts:    []ConceptArea{ConceptTesting},
			Tags:        []string{"junit", "junit5", "testing", "docs"},
		},
		{
			ID:          "jcip",
			Title:       "Java Concurrency in Practice",
			Description: "The definitive book on the Java memory model, thread safety, and concurrent building blocks.",
			URL:         "https://jcip.net/",
			Type:        TypeBook,
			Difficulty:  Advanced,
			Freshness:   Evergreen,
			Language:    "en",
			Official:    false,
			Free:        false,
			Author:      "Brian Goetz",
			Categories:  []Category{CategoryJava},
			Concepts:    []ConceptArea{ConceptConcurrency, ConceptMemoryManagement},
			Tags:        []string{"threads", "concurrency", "java", "memory-model"},
		},
		{
			ID:          "effective-java",
			Title:       "Effective Java",
			Description: "Best-practice items covering API design, generics, enums, and concurrency.",
			URL:         "https://www.oreilly.com/library/view/effective-java/9780134686097/",
			Type:        TypeBook,
			Difficulty:  Intermediate,
			Freshness:   Evergreen,
			Language:    "en",
			Official:    false,
			Free:        false,
			Author:      "Joshua Bloch",
			Categories:  []Category{CategoryJava},
			Concepts:    []ConceptArea{ConceptCleanCode, ConceptDesignPatterns},
			Tags:        []string{"java", "best-practices", "api-design"},
		},
		{
			ID:          "java-tutorial-dev",
			Title:       "Dev.java Learn Java",
			Description: "Official Oracle tutorial series for the Java language and core libraries.",
			URL:         "https://dev.java/learn/",
			Type:        TypeTutorial,
			Difficulty:  Beginner,
			Freshness:   ActivelyMaintained,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "Oracle",
			Categories:  []Category{CategoryJava},
			Concepts:    []ConceptArea{ConceptProgrammingBasics},
			Tags:        []string{"java", "tutorial", "beginner"},
		},
		{
			ID:          "python-official-tutorial",
			Title:       "The Python Tutorial",
			Description: "The official walkthrough of the Python language from python.org.",
			URL:         "https://docs.python.org/3/tutorial/",
			Type:        TypeDocumentation,
			Difficulty:  Beginner,
			Freshness:   ActivelyMaintained,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "Python Software Foundation",
			Categories:  []Category{CategoryPython},
			Concepts:    []ConceptArea{ConceptProgrammingBasics},
			Tags:        []string{"python", "tutorial", "docs"},
		},
		{
			ID:          "fluent-python",
			Title:       "Fluent Python",
			Description: "Idiomatic Python: data model, functions as objects, coroutines, and metaprogramming.",
			URL:         "https://www.oreilly.com/library/view/fluent-python-2nd/9781492056348/",
			Type:        TypeBook,
			Difficulty:  Advanced,
			Freshness:   PeriodicallyUpdated,
			Language:    "en",
			Official:    false,
			Free:        false,
			Author:      "Luciano Ramalho",
			Categories:  []Category{CategoryPython},
			Concepts:    []ConceptArea{ConceptFunctional, ConceptCleanCode},
			Tags:        []string{"python", "idioms", "advanced"},
		},
		{
			ID:          "go-tour",
			Title:       "A Tour of Go",
			Description: "Interactive introduction to Go syntax, methods, interfaces, and goroutines.",
			URL:         "https://go.dev/tour/",
			Type:        TypeTutorial,
			Difficulty:  Beginner,
			Freshness:   ActivelyMaintained,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "Go Team",
			Categories:  []Category{CategoryGo},
			Concepts:    []ConceptArea{ConceptProgrammingBasics, ConceptConcurrency},
			Tags:        []string{"go", "golang", "tour", "goroutines"},
		},
		{
			ID:          "go-concurrency-patterns",
			Title:       "Go Concurrency Patterns",
			Description: "Rob Pike's talk on channels, select, and pipeline composition.",
			URL:         "https://go.dev/talks/2012/concurrency.slide",
			Type:        TypeVideo,
			Difficulty:  Intermediate,
			Freshness:   Historical,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "Rob Pike",
			Categories:  []Category{CategoryGo},
			Concepts:    []ConceptArea{ConceptConcurrency},
			Tags:        []string{"go", "channels", "concurrency", "talk"},
		},
		{
			ID:          "designing-data-intensive",
			Title:       "Designing Data-Intensive Applications",
			Description: "Replication, partitioning, transactions, and the guarantees of distributed data systems.",
			URL:         "https://dataintensive.net/",
			Type:        TypeBook,
			Difficulty:  Advanced,
			Freshness:   Evergreen,
			Language:    "en",
			Official:    false,
			Free:        false,
			Author:      "Martin Kleppmann",
			Categories:  []Category{CategoryDatabases, CategoryArchitecture},
			Concepts:    []ConceptArea{ConceptDistributed, ConceptDataStructures},
			Tags:        []string{"ddia", "distributed", "databases", "replication"},
		},
		{
			ID:          "kubernetes-docs",
			Title:       "Kubernetes Documentation",
			Description: "Official concepts, tasks, and reference for running workloads on Kubernetes.",
			URL:         "https://kubernetes.io/docs/home/",
			Type:        TypeDocumentation,
			Difficulty:  Intermediate,
			Freshness:   ActivelyMaintained,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "CNCF",
			Categories:  []Category{CategoryDevOps},
			Concepts:    []ConceptArea{ConceptContainers, ConceptCloud},
			Tags:        []string{"k8s", "kubernetes", "containers", "docs"},
		},
		{
			ID:          "docker-getting-started",
			Title:       "Docker Getting Started",
			Description: "Official hands-on introduction to images, containers, and compose.",
			URL:         "https://docs.docker.com/get-started/",
			Type:        TypeTutorial,
			Difficulty:  Beginner,
			Freshness:   ActivelyMaintained,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "Docker Inc",
			Categories:  []Category{CategoryDevOps},
			Concepts:    []ConceptArea{ConceptContainers},
			Tags:        []string{"docker", "containers", "beginner"},
		},
		{
			ID:          "design-patterns-gof",
			Title:       "Design Patterns: Elements of Reusable Object-Oriented Software",
			Description: "The original catalog of creational, structural, and behavioral patterns.",
			URL:         "https://www.oreilly.com/library/view/design-patterns-elements/0201633612/",
			Type:        TypeBook,
			Difficulty:  Advanced,
			Freshness:   Historical,
			Language:    "en",
			Official:    false,
			Free:        false,
			Author:      "Gamma, Helm, Johnson, Vlissides",
			Categories:  []Category{CategoryArchitecture},
			Concepts:    []ConceptArea{ConceptDesignPatterns},
			Tags:        []string{"gof", "patterns", "oop"},
		},
		{
			ID:          "refactoring-guru-patterns",
			Title:       "Refactoring.Guru Design Patterns",
			Description: "Illustrated catalog of the classic patterns with examples in several languages.",
			URL:         "https://refactoring.guru/design-patterns",
			Type:        TypeArticle,
			Difficulty:  Intermediate,
			Freshness:   PeriodicallyUpdated,
			Language:    "en",
			Official:    false,
			Free:        true,
			Author:      "Alexander Shvets",
			Categories:  []Category{CategoryArchitecture, CategoryGeneral},
			Concepts:    []ConceptArea{ConceptDesignPatterns, ConceptCleanCode},
			Tags:        []string{"patterns", "solid", "refactoring"},
		},
		{
			ID:          "clean-code",
			Title:       "Clean Code",
			Description: "Naming, functions, comments, and the craft of readable code.",
			URL:         "https://www.oreilly.com/library/view/clean-code-a/9780136083238/",
			Type:        TypeBook,
			Difficulty:  Intermediate,
			Freshness:   Historical,
			Language:    "en",
			Official:    false,
			Free:        false,
			Author:      "Robert C. Martin",
			Categories:  []Category{CategoryGeneral},
			Concepts:    []ConceptArea{ConceptCleanCode},
			Tags:        []string{"clean", "craftsmanship", "naming"},
		},
		{
			ID:          "mdn-javascript-guide",
			Title:       "MDN JavaScript Guide",
			Description: "Mozilla's official guide from language basics through async programming.",
			URL:         "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide",
			Type:        TypeDocumentation,
			Difficulty:  Beginner,
			Freshness:   ActivelyMaintained,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "Mozilla",
			Categories:  []Category{CategoryJavaScript, CategoryWeb},
			Concepts:    []ConceptArea{ConceptProgrammingBasics, ConceptWebFrameworks},
			Tags:        []string{"javascript", "mdn", "web", "async"},
		},
		{
			ID:          "pro-git",
			Title:       "Pro Git",
			Description: "The full Git book: branching, rebasing, internals, and workflows.",
			URL:         "https://git-scm.com/book/en/v2",
			Type:        TypeBook,
			Difficulty:  Beginner,
			Freshness:   ActivelyMaintained,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "Scott Chacon",
			Categories:  []Category{CategoryGeneral},
			Concepts:    []ConceptArea{ConceptVersionControl},
			Tags:        []string{"git", "version-control", "branching"},
		},
		{
			ID:          "owasp-top-ten",
			Title:       "OWASP Top Ten",
			Description: "The standard awareness document for the most critical web application risks.",
			URL:         "https://owasp.org/www-project-top-ten/",
			Type:        TypeArticle,
			Difficulty:  Intermediate,
			Freshness:   PeriodicallyUpdated,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "OWASP Foundation",
			Categories:  []Category{CategorySecurity, CategoryWeb},
			Concepts:    []ConceptArea{ConceptNetworking},
			Tags:        []string{"owasp", "security", "web"},
		},
		{
			ID:          "algorithms-sedgewick",
			Title:       "Algorithms, Fourth Edition",
			Description: "Sorting, searching, graphs, and strings with full Java implementations.",
			URL:         "https://algs4.cs.princeton.edu/home/",
			Type:        TypeBook,
			Difficulty:  Advanced,
			Freshness:   Evergreen,
			Language:    "en",
			Official:    false,
			Free:        false,
			Author:      "Robert Sedgewick",
			Categories:  []Category{CategoryJava, CategoryGeneral},
			Concepts:    []ConceptArea{ConceptAlgorithms, ConceptDataStructures},
			Tags:        []string{"algorithms", "graphs", "sorting"},
		},
		{
			ID:          "cs50x",
			Title:       "CS50x: Introduction to Computer Science",
			Description: "Harvard's entry-level course covering C, Python, SQL, and web basics.",
			URL:         "https://cs50.harvard.edu/x/",
			Type:        TypeCourse,
			Difficulty:  Beginner,
			Freshness:   PeriodicallyUpdated,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "David J. Malan",
			Categories:  []Category{CategoryGeneral},
			Concepts:    []ConceptArea{ConceptProgrammingBasics, ConceptAlgorithms},
			Tags:        []string{"cs50", "course", "beginner", "programming"},
		},
		{
			ID:          "github-actions-docs",
			Title:       "GitHub Actions Documentation",
			Description: "Official reference for workflows, runners, and CI/CD pipelines on GitHub.",
			URL:         "https://docs.github.com/en/actions",
			Type:        TypeDocumentation,
			Difficulty:  Intermediate,
			Freshness:   ActivelyMaintained,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "GitHub",
			Categories:  []Category{CategoryDevOps},
			Concepts:    []ConceptArea{ConceptCICD, ConceptVersionControl},
			Tags:        []string{"ci", "cd", "actions", "pipelines"},
		},
		{
			ID:          "old-java-applets-guide",
			Title:       "Java Applets Programming Guide",
			Description: "Legacy guide to browser applets, kept for historical interest only.",
			URL:         "https://docs.oracle.com/javase/8/docs/technotes/guides/deploy/applet_dev_guide.html",
			Type:        TypeDocumentation,
			Difficulty:  Intermediate,
			Freshness:   Archived,
			Language:    "en",
			Official:    true,
			Free:        true,
			Author:      "Oracle",
			Categories:  []Category{CategoryJava},
			Concepts:    []ConceptArea{ConceptWebFrameworks},
			Tags:        []string{"applets", "legacy", "java"},
		},
	}
}
