package discovery

import "github.com/saharshpoddar/learning-gateway/internal/vault"

// conceptKeywords maps lowercased query tokens onto concept areas.
var conceptKeywords = map[string][]vault.ConceptArea{
	"concurrency": {vault.ConceptConcurrency},
	"concurrent":  {vault.ConceptConcurrency},
	"threads":     {vault.ConceptConcurrency},
	"thread":      {vault.ConceptConcurrency},
	"async":       {vault.ConceptConcurrency},
	"parallel":    {vault.ConceptConcurrency},
	"goroutines":  {vault.ConceptConcurrency},
	"channels":    {vault.ConceptConcurrency},
	"mutex":       {vault.ConceptConcurrency},

	"pattern":  {vault.ConceptDesignPatterns},
	"patterns": {vault.ConceptDesignPatterns},
	"solid":    {vault.ConceptDesignPatterns, vault.ConceptCleanCode},
	"clean":    {vault.ConceptDesignPatterns, vault.ConceptCleanCode},
	"singleton": {vault.ConceptDesignPatterns},

	"test":    {vault.ConceptTesting},
	"tests":   {vault.ConceptTesting},
	"testing": {vault.ConceptTesting},
	"junit":   {vault.ConceptTesting},
	"tdd":     {vault.ConceptTesting},
	"mock":    {vault.ConceptTesting},
	"mocking": {vault.ConceptTesting},

	"k8s":        {vault.ConceptContainers},
	"kubernetes": {vault.ConceptContainers},
	"docker":     {vault.ConceptContainers},
	"helm":       {vault.ConceptContainers},
	"container":  {vault.ConceptContainers},
	"containers": {vault.ConceptContainers},

	"algorithm":  {vault.ConceptAlgorithms},
	"algorithms": {vault.ConceptAlgorithms},
	"sorting":    {vault.ConceptAlgorithms},
	"graphs":     {vault.ConceptAlgorithms, vault.ConceptDataStructures},
	"recursion":  {vault.ConceptAlgorithms},

	"structures": {vault.ConceptDataStructures},
	"hashmap":    {vault.ConceptDataStructures},
	"trees":      {vault.ConceptDataStructures},

	"functional": {vault.ConceptFunctional},
	"lambda":     {vault.ConceptFunctional},
	"lambdas":    {vault.ConceptFunctional},
	"immutable":  {vault.ConceptFunctional},

	"distributed":   {vault.ConceptDistributed},
	"consensus":     {vault.ConceptDistributed},
	"replication":   {vault.ConceptDistributed},
	"microservices": {vault.ConceptDistributed},

	"cicd":      {vault.ConceptCICD},
	"pipeline":  {vault.ConceptCICD},
	"pipelines": {vault.ConceptCICD},
	"jenkins":   {vault.ConceptCICD},
	"actions":   {vault.ConceptCICD},

	"cloud": {vault.ConceptCloud},
	"aws":   {vault.ConceptCloud},
	"azure": {vault.ConceptCloud},
	"gcp":   {vault.ConceptCloud},

	"network":    {vault.ConceptNetworking},
	"networking": {vault.ConceptNetworking},
	"http":       {vault.ConceptNetworking},
	"tcp":        {vault.ConceptNetworking},
	"dns":        {vault.ConceptNetworking},

	"memory":  {vault.ConceptMemoryManagement},
	"heap":    {vault.ConceptMemoryManagement},
	"garbage": {vault.ConceptMemoryManagement},

	"web":      {vault.ConceptWebFrameworks},
	"frontend": {vault.ConceptWebFrameworks},
	"react":    {vault.ConceptWebFrameworks},
	"spring":   {vault.ConceptWebFrameworks},

	"git":      {vault.ConceptVersionControl},
	"branch":   {vault.ConceptVersionControl},
	"merge":    {vault.ConceptVersionControl},
	"rebase":   {vault.ConceptVersionControl},
	"branching": {vault.ConceptVersionControl},

	"refactoring":   {vault.ConceptCleanCode},
	"naming":        {vault.ConceptCleanCode},
	"craftsmanship": {vault.ConceptCleanCode},

	"programming":  {vault.ConceptProgrammingBasics},
	"basics":       {vault.ConceptProgrammingBasics},
	"fundamentals": {vault.ConceptProgrammingBasics},
	"code":         {vault.ConceptProgrammingBasics},
	"coding":       {vault.ConceptProgrammingBasics},
}

// categoryKeywords maps lowercased query tokens onto coarse categories.
var categoryKeywords = map[string][]vault.Category{
	"java":   {vault.CategoryJava},
	"jdk":    {vault.CategoryJava},
	"jvm":    {vault.CategoryJava},
	"junit":  {vault.CategoryJava},
	"maven":  {vault.CategoryJava},
	"gradle": {vault.CategoryJava},
	"spring": {vault.CategoryJava},

	"python": {vault.CategoryPython},
	"pip":    {vault.CategoryPython},
	"django": {vault.CategoryPython},
	"flask":  {vault.CategoryPython},
	"pandas": {vault.CategoryPython},

	"golang":     {vault.CategoryGo},
	"goroutines": {vault.CategoryGo},

	"javascript": {vault.CategoryJavaScript},
	"node":       {vault.CategoryJavaScript},
	"nodejs":     {vault.CategoryJavaScript},
	"typescript": {vault.CategoryJavaScript},
	"react":      {vault.CategoryJavaScript},

	"devops":     {vault.CategoryDevOps},
	"docker":     {vault.CategoryDevOps},
	"kubernetes": {vault.CategoryDevOps},
	"k8s":        {vault.CategoryDevOps},
	"terraform":  {vault.CategoryDevOps},
	"ansible":    {vault.CategoryDevOps},
	"jenkins":    {vault.CategoryDevOps},

	"sql":       {vault.CategoryDatabases},
	"database":  {vault.CategoryDatabases},
	"databases": {vault.CategoryDatabases},
	"postgres":  {vault.CategoryDatabases},
	"mysql":     {vault.CategoryDatabases},
	"redis":     {vault.CategoryDatabases},
	"mongodb":   {vault.CategoryDatabases},

	"web":  {vault.CategoryWeb},
	"html": {vault.CategoryWeb},
	"css":  {vault.CategoryWeb},
	"rest": {vault.CategoryWeb},
	"api":  {vault.CategoryWeb},

	"security": {vault.CategorySecurity},
	"owasp":    {vault.CategorySecurity},
	"crypto":   {vault.CategorySecurity},
	"auth":     {vault.CategorySecurity},
	"oauth":    {vault.CategorySecurity},

	"architecture":  {vault.CategoryArchitecture},
	"microservices": {vault.CategoryArchitecture},
	"ddd":           {vault.CategoryArchitecture},
	"design":        {vault.CategoryArchitecture},
}

// adjacentConcepts suggests broader or neighboring topics for exploratory
// queries.
var adjacentConcepts = map[vault.ConceptArea][]vault.ConceptArea{
	vault.ConceptConcurrency:       {vault.ConceptDistributed, vault.ConceptMemoryManagement},
	vault.ConceptDesignPatterns:    {vault.ConceptCleanCode, vault.ConceptTesting},
	vault.ConceptTesting:           {vault.ConceptCleanCode, vault.ConceptCICD},
	vault.ConceptContainers:        {vault.ConceptCloud, vault.ConceptCICD},
	vault.ConceptAlgorithms:        {vault.ConceptDataStructures},
	vault.ConceptDataStructures:    {vault.ConceptAlgorithms, vault.ConceptMemoryManagement},
	vault.ConceptFunctional:        {vault.ConceptCleanCode},
	vault.ConceptDistributed:       {vault.ConceptCloud, vault.ConceptNetworking},
	vault.ConceptCICD:              {vault.ConceptVersionControl, vault.ConceptContainers},
	vault.ConceptCloud:             {vault.ConceptContainers, vault.ConceptDistributed},
	vault.ConceptNetworking:        {vault.ConceptDistributed},
	vault.ConceptMemoryManagement:  {vault.ConceptConcurrency},
	vault.ConceptWebFrameworks:     {vault.ConceptNetworking},
	vault.ConceptVersionControl:    {vault.ConceptCICD},
	vault.ConceptCleanCode:         {vault.ConceptDesignPatterns, vault.ConceptTesting},
	vault.ConceptProgrammingBasics: {vault.ConceptAlgorithms, vault.ConceptCleanCode, vault.ConceptTesting},
}
