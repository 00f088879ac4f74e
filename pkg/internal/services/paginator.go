package services

import (
	"strconv"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const DefaultPageSize = 10

// Page is one slice of an ordered collection, numbers start at 1.
type Page[T any] struct {
	Items    []T   `json:"data"`
	Count    int64 `json:"count"`
	Number   int   `json:"page"`
	NumPages int   `json:"pages"`
	Size     int   `json:"-"`
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page[T]) HasOtherPages() bool {
	return p.HasPrevious() || p.HasNext()
}

func (p Page[T]) PreviousNumber() int {
	return p.Number - 1
}

func (p Page[T]) NextNumber() int {
	return p.Number + 1
}

func GetPageSize() int {
	if size := viper.GetInt("posts.page_size"); size > 0 {
		return size
	}
	return DefaultPageSize
}

// ResolvePageNumber turns the raw page query into a valid page number.
// Missing, malformed and non positive values give the first page, too large ones the last.
func ResolvePageNumber(requested string, count int64, size int) (number int, numPages int) {
	numPages = 1
	if count > 0 {
		numPages = int((count + int64(size) - 1) / int64(size))
	}

	number, err := strconv.Atoi(requested)
	if err != nil || number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	return number, numPages
}

// Paginate fetches a single page through fetch, which receives the limit and the offset.
func Paginate[T any](count int64, requested string, size int, fetch func(take, offset int) ([]T, error)) (Page[T], error) {
	if size <= 0 {
		size = DefaultPageSize
	}

	number, numPages := ResolvePageNumber(requested, count, size)
	page := Page[T]{
		Count:    count,
		Number:   number,
		NumPages: numPages,
		Size:     size,
		Items:    []T{},
	}

	if count == 0 {
		return page, nil
	}

	items, err := fetch(size, (number-1)*size)
	if err != nil {
		return page, err
	}
	page.Items = items

	return page, nil
}

func PaginatePost(tx *gorm.DB, requested string) (Page[models.Post], error) {
	tx = tx.Session(&gorm.Session{})

	count, err := CountPost(tx)
	if err != nil {
		return Page[models.Post]{}, err
	}

	return Paginate(count, requested, GetPageSize(), func(take, offset int) ([]models.Post, error) {
		return ListPost(tx, take, offset, DefaultPostOrder)
	})
}
