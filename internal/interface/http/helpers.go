package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook 將工作簿以附件串流回應；組建與上色已在記憶體完成，
// 不落地任何暫存檔。
func (s *Server) writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		s.respondExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, xlsxContentType, buf.Bytes())
}

func optionalFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
