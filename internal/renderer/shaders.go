package renderer

import (
	"Lumen3D/internal/logger"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
}

func (shader *Shader) IsValid() bool {
	return shader.vertexSource != "" && shader.fragmentSource != ""
}

func (shader *Shader) Compile() {
	if shader.isCompiled {
		return
	}
	vertex := compileShader(shader.vertexSource, gl.VERTEX_SHADER)
	fragment := compileShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	shader.program = linkProgram(vertex, fragment)
	shader.isCompiled = true
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform3f(location, value.X(), value.Y(), value.Z())
}

func (shader *Shader) SetFloat(name string, value float32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1f(location, value)
}

func (shader *Shader) SetInt(name string, value int32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1i(location, value)
}

func (shader *Shader) SetVec4(name string, value mgl32.Vec4) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform4f(location, value.X(), value.Y(), value.Z(), value.W())
}

// compileShader compiles a single shader stage. A compile failure is logged
// with the driver's info log and the broken shader handle is returned; the
// tutorials keep running with whatever the driver gives back.
func compileShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		logger.Log.Error("Failed to compile shader",
			zap.Uint32("type", shaderType),
			zap.String("log", infoLog))
	}

	return shader
}

func linkProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		logger.Log.Error("Failed to link shader program", zap.String("log", infoLog))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}

// Plain colored-geometry shader for the first tutorial: positions only,
// one color uniform animated by the host program.
var flatVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;

void main() {
    gl_Position = vec4(inPosition, 1.0);
}
` + "\x00"

var flatFragmentShaderSource = `#version 330 core

uniform vec4 ourColor;

out vec4 FragColor;

void main() {
    FragColor = ourColor;
}
` + "\x00"

var phongVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition; // Vertex position
layout(location = 1) in vec2 inTexCoord; // Texture coordinate
layout(location = 2) in vec3 inNormal;   // Vertex normal

uniform mat4 model;
uniform mat4 viewProjection;
uniform mat3 normalMatrix; // inverse-transpose of model's upper 3x3

out vec2 fragTexCoord;
out vec3 Normal;
out vec3 FragPos;

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    Normal = normalMatrix * inNormal;
    fragTexCoord = inTexCoord;

    gl_Position = viewProjection * vec4(FragPos, 1.0);
}
` + "\x00"

// The multi-light Phong accumulator. This is the GPU rendition of
// lighting.Rig.Shade and the two must stay formula-for-formula identical:
// any change here needs the same change there, where it is testable.
var phongFragmentShaderSource = `#version 330 core

#define MAX_POINT_LIGHTS 4

in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;

struct Material {
    sampler2D diffuse;
    sampler2D specular;
    float shininess;
};

struct DirLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
};

struct PointLight {
    vec3 position;
    float constant;
    float linear;
    float quadratic;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
};

struct SpotLight {
    vec3 position;
    vec3 direction;
    float cutOff;
    float outerCutOff;
    float constant;
    float linear;
    float quadratic;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
};

uniform Material material;
uniform DirLight dirLight;
uniform bool hasDirLight;
uniform PointLight pointLights[MAX_POINT_LIGHTS];
uniform int pointLightCount;
uniform SpotLight spotLight;
uniform bool hasSpotLight;
uniform vec3 viewPos;

out vec4 FragColor;

vec3 CalcDirLight(DirLight light, vec3 normal, vec3 viewDir) {
    vec3 lightDir = normalize(-light.direction);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
    vec3 ambient = light.ambient * vec3(texture(material.diffuse, fragTexCoord));
    vec3 diffuse = light.diffuse * diff * vec3(texture(material.diffuse, fragTexCoord));
    vec3 specular = light.specular * spec * vec3(texture(material.specular, fragTexCoord));
    return ambient + diffuse + specular;
}

vec3 CalcPointLight(PointLight light, vec3 normal, vec3 fragPos, vec3 viewDir) {
    vec3 lightDir = normalize(light.position - fragPos);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
    float distance = length(light.position - fragPos);
    float attenuation = 1.0 / (light.constant + light.linear * distance + light.quadratic * distance * distance);
    vec3 ambient = light.ambient * vec3(texture(material.diffuse, fragTexCoord));
    vec3 diffuse = light.diffuse * diff * vec3(texture(material.diffuse, fragTexCoord));
    vec3 specular = light.specular * spec * vec3(texture(material.specular, fragTexCoord));
    return (ambient + diffuse + specular) * attenuation;
}

vec3 CalcSpotLight(SpotLight light, vec3 normal, vec3 fragPos, vec3 viewDir) {
    vec3 lightDir = normalize(light.position - fragPos);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
    float distance = length(light.position - fragPos);
    float attenuation = 1.0 / (light.constant + light.linear * distance + light.quadratic * distance * distance);
    float theta = dot(lightDir, normalize(-light.direction));
    float epsilon = light.cutOff - light.outerCutOff;
    float intensity = clamp((theta - light.outerCutOff) / epsilon, 0.0, 1.0);
    vec3 ambient = light.ambient * vec3(texture(material.diffuse, fragTexCoord));
    vec3 diffuse = light.diffuse * diff * vec3(texture(material.diffuse, fragTexCoord));
    vec3 specular = light.specular * spec * vec3(texture(material.specular, fragTexCoord));
    return (ambient + diffuse + specular) * attenuation * intensity;
}

void main() {
    vec3 norm = normalize(Normal);
    vec3 viewDir = normalize(viewPos - FragPos);

    vec3 result = vec3(0.0);
    if (hasDirLight) {
        result += CalcDirLight(dirLight, norm, viewDir);
    }
    for (int i = 0; i < pointLightCount; i++) {
        result += CalcPointLight(pointLights[i], norm, FragPos, viewDir);
    }
    if (hasSpotLight) {
        result += CalcSpotLight(spotLight, norm, FragPos, viewDir);
    }

    // No tone mapping: values above 1.0 are left for the output format to clip.
    FragColor = vec4(result, 1.0);
}
` + "\x00"

func InitPhongShader() Shader {
	return Shader{
		vertexSource:   phongVertexShaderSource,
		fragmentSource: phongFragmentShaderSource,
	}
}

func InitFlatShader() Shader {
	return Shader{
		vertexSource:   flatVertexShaderSource,
		fragmentSource: flatFragmentShaderSource,
	}
}
