package handler

import (
	"errors"
	"fmt"
	"time"

	"catering_manager/constants"
	"catering_manager/helper"
	"catering_manager/model"
	"catering_manager/repository"
	"catering_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetMenu zwraca aktywne pozycje menu dla formularza publicznego.
func GetMenu(c *fiber.Ctx) error {
	items, err := menuRepo.ListActive(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

// GetMenuItems listuje wszystkie pozycje (również nieaktywne) dla panelu.
func GetMenuItems(c *fiber.Ctx) error {
	var filter model.MenuItemFilter

	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if active := c.Query("active"); active != "" {
		filter.Active = utils.Ptr(active == "true")
	}
	if limit := c.QueryInt("limit"); limit > 0 {
		filter.Limit = &limit
	}
	if page := c.QueryInt("page"); page > 0 {
		filter.Page = &page
	}

	items, totalCount, err := menuRepo.List(c.Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       items,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateMenuItem(c *fiber.Ctx) error {
	input := c.Locals("inputCreateMenuItem").(model.CreateMenuItemInput)

	item := model.MenuItem{
		Slug:        helper.GenerateUniqueMenuItemSlug(c.Context(), menuRepo, input.Name),
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Category:    input.Category,
		Active:      true,
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := menuRepo.Create(c.Context(), &item); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func UpdateMenuItem(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("inputUpdateMenuItem").(model.UpdateMenuItemInput)

	item, err := menuRepo.GetByID(c.Context(), uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Przepisujemy tylko pola podane w żądaniu
	if err := copier.CopyWithOption(item, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Name != nil {
		item.Slug = helper.GenerateUniqueMenuItemSlug(c.Context(), menuRepo, *input.Name)
	}

	if err := menuRepo.Save(c.Context(), item); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// UploadMenuItemImage wysyła zdjęcie pozycji do Cloudinary i zapisuje adres URL.
func UploadMenuItemImage(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	item, err := menuRepo.GetByID(c.Context(), uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nie można odczytać pliku ze zdjęciem",
		})
	}
	if file.Size > 5*1024*1024 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Plik przekracza 5MB",
		})
	}

	cld, ok := c.Locals("cld").(*cloudinary.Cloudinary)
	if !ok || cld == nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("cloudinary not configured"))
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Nie można otworzyć pliku: %s", err.Error()),
		})
	}
	defer f.Close()

	uploadResult, err := cld.Upload.Upload(c.Context(), f, uploader.UploadParams{
		Folder:       "menu",
		PublicID:     fmt.Sprintf("menu_%d_%d", item.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload zdjęcia nie powiódł się", err)
	}

	item.ImageUrl = &uploadResult.SecureURL
	if err := menuRepo.Save(c.Context(), item); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}
