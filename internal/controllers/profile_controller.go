package controllers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MadhavSinha007/CrimeFile/internal/profile"
)

// maxImageBytes bounds the uploaded photo size.
const maxImageBytes = 8 << 20

// ProfileController exposes the speculative image-profile lookup. Keeping
// it server-side keeps the model API key out of the browser bundle.
type ProfileController struct {
	profiler *profile.Profiler
}

func NewProfileController(profiler *profile.Profiler) *ProfileController {
	return &ProfileController{profiler: profiler}
}

func (ctr *ProfileController) Register(g *echo.Group) {
	g.POST("/profile", ctr.AnalyzeImage)
}

// AnalyzeImage handles POST /profile with a multipart "image" field.
func (ctr *ProfileController) AnalyzeImage(c echo.Context) error {
	if ctr.profiler == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"message": "Profile service is not configured.",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "An image file is required."})
	}
	if fileHeader.Size > maxImageBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"message": "Image exceeds the size limit."})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Failed to read image", "error": err.Error()})
	}
	defer f.Close()

	image, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Failed to read image", "error": err.Error()})
	}

	result, err := ctr.profiler.IdentifyFromImage(
		c.Request().Context(), image, fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{
			"message": "Profile service failed", "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, result)
}
