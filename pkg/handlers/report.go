package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/service"
	"finan/ms-pos-report/pkg/utils"
	"finan/ms-pos-report/pkg/valid"

	"github.com/gin-gonic/gin"
	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
)

type ReportHandlers struct {
	service service.ReportServiceInterface
}

func NewReportHandlers(service service.ReportServiceInterface) *ReportHandlers {
	return &ReportHandlers{service: service}
}

func (h *ReportHandlers) GetStoreEndDayReport(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ReportHandlers.GetStoreEndDayReport")

	identity, err := utils.CurrentIdentity(r.GinCtx)
	if err != nil {
		log.WithError(err).Error("Error when get current identity")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	req := model.StoreReportRequest{}
	r.MustBind(&req)
	req.StoreID = valid.ParseUUID(r.GinCtx.Param("id"))

	if err = common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input:"+err.Error())
	}

	rs, err := h.service.GetStoreEndDayReport(r.Context(), identity, req)
	if err != nil {
		return nil, utils.ToGinext(err)
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}

func (h *ReportHandlers) GetSessionReportDetail(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ReportHandlers.GetSessionReportDetail")

	identity, err := utils.CurrentIdentity(r.GinCtx)
	if err != nil {
		log.WithError(err).Error("Error when get current identity")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	rs, err := h.service.GetSessionReportDetail(r.Context(), identity, valid.ParseUUID(r.GinCtx.Param("id")))
	if err != nil {
		return nil, utils.ToGinext(err)
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}

// DownloadStoreReport streams the xlsx export. It is a plain gin handler
// because ginext only renders JSON bodies.
func (h *ReportHandlers) DownloadStoreReport(c *gin.Context) {
	log := logger.WithCtx(c, "ReportHandlers.DownloadStoreReport")

	identity, err := utils.CurrentIdentity(c)
	if err != nil {
		log.WithError(err).Error("Error when get current identity")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": utils.MessageError()[http.StatusUnauthorized]})
		return
	}

	req := model.StoreReportRequest{}
	if err = c.ShouldBindQuery(&req); err != nil {
		log.WithError(err).Error("error_400: Cannot bind query in DownloadStoreReport")
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": utils.MessageError()[http.StatusBadRequest]})
		return
	}
	req.StoreID = valid.ParseUUID(c.Param("id"))

	if err = common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid input:" + err.Error()})
		return
	}

	file, err := h.service.DownloadStoreReport(c.Request.Context(), identity, req)
	if err != nil {
		c.AbortWithStatusJSON(utils.StatusCode(err), gin.H{"message": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		utils.ASCIIFileName(file.FileName), url.PathEscape(file.FileName)))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
