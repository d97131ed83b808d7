// Package urls collects the external links tuibox shows or opens.
//
// Keeping them in one place means a moved documentation page is a one-line
// change:
//
//	tips = append(tips, "Connection string format: "+urls.MongoConnectionString)
package urls
