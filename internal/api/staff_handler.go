package api

import (
	"net/http"
	"strconv"

	"pos-service/internal/service"

	"github.com/gin-gonic/gin"
)

type verifyLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// verifyLogin handles POST /verify-login
func (h *Handler) verifyLogin(c *gin.Context) {
	var req verifyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	emp, err := h.staff.VerifyLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if emp == nil {
		c.JSON(http.StatusUnauthorized, nil)
		return
	}

	c.JSON(http.StatusOK, emp)
}

type googleLoginRequest struct {
	Token string `json:"token"`
}

// googleLogin handles POST /google-login
func (h *Handler) googleLogin(c *gin.Context) {
	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	emp, err := h.staff.GoogleLogin(c.Request.Context(), req.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	if emp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Google user not registered"})
		return
	}

	c.JSON(http.StatusOK, emp)
}

// getEmployees handles GET /employees
func (h *Handler) getEmployees(c *gin.Context) {
	employees, err := h.staff.GetEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// addEmployee handles POST /employees
func (h *Handler) addEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if _, err := h.staff.CreateEmployee(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Employee added successfully"})
}

// updateEmployee handles PUT /employees/:id
func (h *Handler) updateEmployee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid employee ID"})
		return
	}

	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.staff.UpdateEmployee(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
}

// deleteEmployee handles DELETE /employees/:id
func (h *Handler) deleteEmployee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid employee ID"})
		return
	}

	if err := h.staff.DeleteEmployee(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
