package auth

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/eya415/RentHub/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const dateOfBirthLayout = "2006-01-02"

// RegisterHandler creates a user account plus the profile row matching the
// requested account type. Query param "type" selects the form: individual
// (default), corporate or studio. Identity/company documents arrive as
// multipart files and are stored under the uploads directory.
//
// POST /auth/register?type=individual
func RegisterHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountType := c.DefaultQuery("type", "individual")

		username := c.PostForm("username")
		email := c.PostForm("email")
		password := c.PostForm("password")
		if username == "" || email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
			return
		}
		if c.PostForm("agree_terms") != "true" && c.PostForm("agree_terms") != "on" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You must agree to the terms"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
			Cart:         models.Cart{},
		}

		var txErr error
		switch accountType {
		case "individual":
			user.AccountType = models.AccountTypeIndividual
			txErr = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&user).Error; err != nil {
					return err
				}
				return createIndividualProfile(c, tx, user.ID)
			})
		case "corporate":
			user.AccountType = models.AccountTypeCorporate
			txErr = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&user).Error; err != nil {
					return err
				}
				return createCorporateProfile(c, tx, user.ID)
			})
		case "studio":
			user.AccountType = models.AccountTypeStudio
			txErr = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&user).Error; err != nil {
					return err
				}
				return createStudioProfile(c, tx, user.ID)
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account type"})
			return
		}
		if txErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error during registration: " + txErr.Error()})
			return
		}

		token, err := issueJWT(jwtSecret, user.ID, user.Username, string(user.AccountType))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration successful! Welcome to RentHub.",
			"user":    user,
			"token":   token,
		})
	}
}

func createIndividualProfile(c *gin.Context, tx *gorm.DB, userID uint) error {
	dob, err := time.Parse(dateOfBirthLayout, c.PostForm("date_of_birth"))
	if err != nil {
		return fmt.Errorf("invalid date_of_birth")
	}

	idFront, err := saveDocument(c, "id_front", "ids/individual")
	if err != nil {
		return err
	}
	idRear, err := saveDocument(c, "id_rear", "ids/individual")
	if err != nil {
		return err
	}
	otherID, err := saveDocument(c, "other_id", "ids/individual")
	if err != nil {
		return err
	}

	profile := models.IndividualProfile{
		UserID:               userID,
		BaseProfile:          baseProfileFromForm(c),
		FullName:             c.PostForm("full_name"),
		DateOfBirth:          dob,
		CameraSystem:         c.PostForm("camera_system"),
		ProfessionalCategory: c.PostForm("professional_category"),
		PortfolioLink:        c.PostForm("portfolio_link"),
		IDFront:              idFront,
		IDRear:               idRear,
		OtherID:              otherID,
	}
	return tx.Create(&profile).Error
}

func createCorporateProfile(c *gin.Context, tx *gorm.DB, userID uint) error {
	ceoIDFront, err := saveDocument(c, "ceo_id_front", "ids/corporate")
	if err != nil {
		return err
	}
	ceoIDRear, err := saveDocument(c, "ceo_id_rear", "ids/corporate")
	if err != nil {
		return err
	}
	authIDFront, err := saveDocument(c, "authorized_id_front", "ids/corporate")
	if err != nil {
		return err
	}
	authIDRear, err := saveDocument(c, "authorized_id_rear", "ids/corporate")
	if err != nil {
		return err
	}
	taxCert, err := saveDocument(c, "tax_certificate", "docs/corporate")
	if err != nil {
		return err
	}
	commercialReg, err := saveDocument(c, "commercial_registration", "docs/corporate")
	if err != nil {
		return err
	}

	profile := models.CorporateProfile{
		UserID:                 userID,
		BaseProfile:            baseProfileFromForm(c),
		CompanyName:            c.PostForm("company_name"),
		CompanyAddress:         c.PostForm("company_address"),
		CompanyWebsite:         c.PostForm("company_website"),
		CompanySocial:          c.PostForm("company_social"),
		CEOName:                c.PostForm("ceo_name"),
		CEOPhone:               c.PostForm("ceo_phone"),
		CEOEmail:               c.PostForm("ceo_email"),
		CEOIDFront:             ceoIDFront,
		CEOIDRear:              ceoIDRear,
		AuthorizedName:         c.PostForm("authorized_name"),
		AuthorizedPhone:        c.PostForm("authorized_phone"),
		AuthorizedEmail:        c.PostForm("authorized_email"),
		AuthorizedIDFront:      authIDFront,
		AuthorizedIDRear:       authIDRear,
		TaxCertificate:         taxCert,
		CommercialRegistration: commercialReg,
	}
	return tx.Create(&profile).Error
}

func createStudioProfile(c *gin.Context, tx *gorm.DB, userID uint) error {
	profile := models.StudioProfile{
		UserID:     userID,
		StudioName: c.PostForm("studio_name"),
		Phone:      c.PostForm("phone"),
		Whatsapp:   c.PostForm("whatsapp"),
		Email:      c.PostForm("email"),
	}
	return tx.Create(&profile).Error
}

func baseProfileFromForm(c *gin.Context) models.BaseProfile {
	return models.BaseProfile{
		MobilePhone:    c.PostForm("phone"),
		WhatsappNumber: c.PostForm("whatsapp"),
		ProfileLink:    c.PostForm("profile_link"),
		HearAbout:      c.PostForm("hear_about"),
		Governorate:    c.PostForm("governorate"),
		City:           c.PostForm("city"),
		Street:         c.PostForm("street"),
		Building:       c.PostForm("building"),
		Floor:          c.PostForm("floor"),
		Apartment:      c.PostForm("apartment"),
		AgreedToTerms:  true,
	}
}

// saveDocument stores an uploaded registration document and returns its
// public path.
func saveDocument(c *gin.Context, field, subdir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("%s is required", field)
	}

	root := os.Getenv("UPLOADS_DIR")
	if root == "" {
		root = "./uploads"
	}
	saveDir := filepath.Join(root, subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(),
		strings.ReplaceAll(filepath.Base(file.Filename), " ", "_"))
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}
	return "/uploads/" + subdir + "/" + filename, nil
}
