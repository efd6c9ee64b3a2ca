package tests

import (
	"campustasks/internal/core/domain"

	"github.com/gin-gonic/gin"
)

// withUser injects an authenticated user the way the auth middleware would.
func withUser(user domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

func testUser() domain.User {
	return domain.User{
		ID:          1,
		Name:        "Ada Student",
		Email:       "ada@campus.edu",
		University:  "MIT",
		Course:      "Computer Science",
		Year:        2,
		Preferences: domain.DefaultPreferences(),
		IsActive:    true,
	}
}
