package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warung-pos/internal/service/catalog"
)

// --- Products ---

func listProductsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListProducts(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func createProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		product, err := svc.CreateProduct(c.Request.Context(), in)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func updateProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		product, err := svc.UpdateProduct(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func deleteProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- Toppings ---

func listToppingsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		toppings, err := svc.ListToppings(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"toppings": toppings})
	}
}

func getToppingHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		topping, err := svc.GetTopping(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, topping)
	}
}

func createToppingHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.ToppingInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		topping, err := svc.CreateTopping(c.Request.Context(), in)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusCreated, topping)
	}
}

func updateToppingHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.ToppingInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		topping, err := svc.UpdateTopping(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, topping)
	}
}

func deleteToppingHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteTopping(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- Categories ---

func listCategoriesHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func createCategoryHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		category, err := svc.CreateCategory(c.Request.Context(), in)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func updateCategoryHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		category, err := svc.UpdateCategory(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func deleteCategoryHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
