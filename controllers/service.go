package controllers

import (
	"net/http"

	"cleanpro-backend/models"
	"cleanpro-backend/repository"
	"cleanpro-backend/services"
	"cleanpro-backend/utils"
	"cleanpro-backend/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceController struct {
	catalog repository.ServiceRepository
	recipes *services.RecipeService
}

func NewServiceController(catalog repository.ServiceRepository, recipes *services.RecipeService) *ServiceController {
	return &ServiceController{catalog: catalog, recipes: recipes}
}

func (ctl *ServiceController) CreateService(c *gin.Context) {
	var form validation.ServiceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	values, fieldErrs := form.Validate()
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
		return
	}

	service := models.Service{
		Name:        values.Name,
		Description: values.Description,
		Price:       values.Price,
		Category:    values.Category,
		IsActive:    values.IsActive,
	}
	if err := ctl.catalog.Create(&service); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (ctl *ServiceController) GetServices(c *gin.Context) {
	list, err := ctl.catalog.GetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *ServiceController) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	service, err := ctl.catalog.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (ctl *ServiceController) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var form validation.ServiceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	values, fieldErrs := form.Validate()
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
		return
	}

	service, err := ctl.catalog.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	service.Name = values.Name
	service.Description = values.Description
	service.Price = values.Price
	service.Category = values.Category
	service.IsActive = values.IsActive

	if err := ctl.catalog.Update(service); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (ctl *ServiceController) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	if err := ctl.catalog.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func (ctl *ServiceController) GetServiceMaterials(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	lines, err := ctl.recipes.GetRecipe(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

type materialsInput struct {
	Materials []services.MaterialInput `json:"materials"`
}

// UpdateServiceMaterials replaces the whole recipe in one shot.
func (ctl *ServiceController) UpdateServiceMaterials(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var input materialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ctl.recipes.SetRecipe(id, input.Materials); err != nil {
		handleServiceError(c, err)
		return
	}

	lines, err := ctl.recipes.GetRecipe(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}
