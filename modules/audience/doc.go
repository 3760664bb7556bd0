// Package audience manages the subscriber roster: who receives content
// announcements, how they joined, and the public subscribe/unsubscribe
// endpoints the site and every announcement email link to.
package audience
