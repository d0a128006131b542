package helper

import (
	"context"
	"fmt"

	"catering_manager/repository"

	"github.com/gosimple/slug"
)

// GenerateUniqueMenuItemSlug dokleja licznik, aż slug będzie wolny.
func GenerateUniqueMenuItemSlug(ctx context.Context, repo repository.MenuItemRepository, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		count, err := repo.CountSlug(ctx, result)
		if err != nil || count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
